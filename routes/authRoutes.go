package routes

import (
	"github.com/Kariqs/hanythrift-api/controllers"
	"github.com/gin-gonic/gin"
)

func AuthRoutes(server *gin.Engine, c *controllers.AuthController) {
	server.POST("/users/", c.Signup)
	server.POST("/token", c.Login)
	server.POST("/token/refresh", c.RefreshToken)
}
