package controllers

import (
	"errors"
	"net/http"

	"github.com/Kariqs/hanythrift-api/models"
	"github.com/Kariqs/hanythrift-api/services"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth  *services.AuthService
	users *services.UserStore
}

func NewAuthController(auth *services.AuthService, users *services.UserStore) *AuthController {
	return &AuthController{auth: auth, users: users}
}

// Signup handles user registration
func (c *AuthController) Signup(ctx *gin.Context) {
	var signUpData models.UserCreate
	if err := ctx.ShouldBindJSON(&signUpData); err != nil {
		respondWithBindError(ctx, err)
		return
	}

	user, err := c.users.Register(ctx.Request.Context(), signUpData)
	if err != nil {
		respondWithError(ctx, err, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, user)
}

// Login exchanges form credentials (username is the email) for a token pair.
func (c *AuthController) Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBind(&loginData); err != nil {
		respondWithBindError(ctx, err)
		return
	}

	token, err := c.auth.Login(ctx.Request.Context(), loginData.Username, loginData.Password)
	if errors.Is(err, services.ErrUnauthorized) {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}
	if err != nil {
		respondWithError(ctx, err, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, token)
}

func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var req models.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondWithBindError(ctx, err)
		return
	}

	token, err := c.auth.Refresh(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		respondWithError(ctx, err, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, token)
}
