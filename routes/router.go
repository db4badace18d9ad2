package routes

import (
	"net/http"
	"time"

	"github.com/Kariqs/hanythrift-api/controllers"
	"github.com/Kariqs/hanythrift-api/middlewares"
	"github.com/Kariqs/hanythrift-api/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Dependencies struct {
	Logger      *zap.Logger
	Metrics     *middlewares.Metrics
	CORSOrigins []string
	Auth        *services.AuthService
	Users       *services.UserStore
	Catalog     *services.CatalogStore
	Cart        *services.CartEngine
	Orders      *services.OrderEngine
}

func SetupRouter(deps Dependencies) *gin.Engine {
	controllers.RegisterValidators()

	server := gin.New()
	server.Use(middlewares.RequestLogger(deps.Logger))
	server.Use(gin.CustomRecovery(func(ctx *gin.Context, recovered any) {
		middlewares.Logger(ctx).Error("panic recovered", zap.Any("panic", recovered), zap.Stack("stack"))
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
	}))
	server.Use(deps.Metrics.Middleware())
	server.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middlewares.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middlewares.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	requireAuth := middlewares.RequireAuth(deps.Auth)

	DefaultRoutes(server, deps.Metrics)
	AuthRoutes(server, controllers.NewAuthController(deps.Auth, deps.Users))
	ProductRoutes(server, controllers.NewProductController(deps.Catalog), requireAuth)
	CartRoutes(server, controllers.NewCartController(deps.Cart), requireAuth)
	OrderRoutes(server, controllers.NewOrderController(deps.Orders), requireAuth)

	return server
}
