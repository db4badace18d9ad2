package routes

import (
	"github.com/Kariqs/hanythrift-api/controllers"
	"github.com/Kariqs/hanythrift-api/middlewares"
	"github.com/gin-gonic/gin"
)

const (
	msgCannotCreateProducts = "Not authorized to create products"
	msgCannotUploadImages   = "Not authorized to upload product images"
)

func ProductRoutes(server *gin.Engine, c *controllers.ProductController, requireAuth gin.HandlerFunc) {
	products := server.Group("/products")
	{
		products.GET("/", c.GetProducts)
		products.GET("/:id", c.GetProduct)
		products.POST("/", requireAuth, middlewares.RequireSeller(msgCannotCreateProducts), c.CreateProduct)
		products.POST("/:id/image", requireAuth, middlewares.RequireSeller(msgCannotUploadImages), c.UploadProductImage)
	}
}
