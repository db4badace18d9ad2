package controllers

import (
	"net/http"

	"github.com/Kariqs/hanythrift-api/middlewares"
	"github.com/Kariqs/hanythrift-api/models"
	"github.com/Kariqs/hanythrift-api/services"
	"github.com/gin-gonic/gin"
)

type CartController struct {
	cart *services.CartEngine
}

func NewCartController(cart *services.CartEngine) *CartController {
	return &CartController{cart: cart}
}

func (c *CartController) GetCart(ctx *gin.Context) {
	items, err := c.cart.Get(ctx.Request.Context(), middlewares.CurrentUser(ctx).ID)
	if err != nil {
		respondWithError(ctx, err, msgCartItemNotFound)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, items)
}

// CreateCartItem adds to the cart, merging with an existing row for the
// same product.
func (c *CartController) CreateCartItem(ctx *gin.Context) {
	var cartItem models.CartItemCreate
	if err := ctx.ShouldBindJSON(&cartItem); err != nil {
		respondWithBindError(ctx, err)
		return
	}

	item, err := c.cart.Add(ctx.Request.Context(), middlewares.CurrentUser(ctx).ID, cartItem)
	if err != nil {
		respondWithError(ctx, err, msgProductNotFound)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, item)
}

func (c *CartController) UpdateCartItem(ctx *gin.Context) {
	itemID, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	var update models.CartItemUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		respondWithBindError(ctx, err)
		return
	}

	item, err := c.cart.Update(ctx.Request.Context(), middlewares.CurrentUser(ctx).ID, itemID, update)
	if err != nil {
		respondWithError(ctx, err, msgCartItemNotFound)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, item)
}

func (c *CartController) DeleteCartItem(ctx *gin.Context) {
	itemID, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.cart.Remove(ctx.Request.Context(), middlewares.CurrentUser(ctx).ID, itemID); err != nil {
		respondWithError(ctx, err, msgCartItemNotFound)
		return
	}

	ctx.Status(http.StatusNoContent)
}
