package routes

import (
	"github.com/Kariqs/hanythrift-api/controllers"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine, c *controllers.OrderController, requireAuth gin.HandlerFunc) {
	orders := server.Group("/orders", requireAuth)
	{
		orders.GET("/", c.GetOrders)
		orders.POST("/", c.CreateOrder)
	}
}
