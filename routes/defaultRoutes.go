package routes

import (
	"github.com/Kariqs/hanythrift-api/controllers"
	"github.com/Kariqs/hanythrift-api/middlewares"
	"github.com/gin-gonic/gin"
)

func DefaultRoutes(server *gin.Engine, metrics *middlewares.Metrics) {
	server.GET("/", controllers.GetHome)
	server.GET("/health-check", controllers.HealthCheck)
	server.GET("/metrics", gin.WrapH(metrics.Handler()))
}
