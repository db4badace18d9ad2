package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func HealthCheck(ctx *gin.Context) {
	sendJSONResponse(ctx, http.StatusOK, gin.H{"status": "ok"})
}

func GetHome(ctx *gin.Context) {
	message := `Welcome to the HanyThrift API.

The following are the endpoints for this API:

AUTH
- POST "/users/" - Create user account
- POST "/token" - Log in (form: username, password)
- POST "/token/refresh" - Exchange a refresh token for a new pair

PRODUCT
- GET "/products/" - List products (skip, limit)
- GET "/products/{id}" - Get product by ID
- POST "/products/" - Create product (sellers)
- POST "/products/{id}/image" - Upload product image (sellers)

CART
- GET "/cart/" - Get cart
- POST "/cart/" - Add to cart
- PUT "/cart/{id}" - Change quantity
- DELETE "/cart/{id}" - Remove from cart

ORDER
- GET "/orders/" - List orders
- POST "/orders/" - Place an order`

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": message})
}
