package controllers

import (
	"net/http"

	"github.com/Kariqs/hanythrift-api/middlewares"
	"github.com/Kariqs/hanythrift-api/models"
	"github.com/Kariqs/hanythrift-api/services"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orders *services.OrderEngine
}

func NewOrderController(orders *services.OrderEngine) *OrderController {
	return &OrderController{orders: orders}
}

func (c *OrderController) CreateOrder(ctx *gin.Context) {
	var order models.OrderCreate
	if err := ctx.ShouldBindJSON(&order); err != nil {
		respondWithBindError(ctx, err)
		return
	}

	created, err := c.orders.Create(ctx.Request.Context(), middlewares.CurrentUser(ctx).ID, order)
	if err != nil {
		respondWithError(ctx, err, msgProductNotFound)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, created)
}

func (c *OrderController) GetOrders(ctx *gin.Context) {
	orders, err := c.orders.List(ctx.Request.Context(), middlewares.CurrentUser(ctx).ID)
	if err != nil {
		respondWithError(ctx, err, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, orders)
}
