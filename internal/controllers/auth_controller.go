package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pizza-backend/internal/httperr"
	"pizza-backend/internal/services"
)

// AuthController handles the /api/auth routes.
type AuthController interface {
	SignUp(c *gin.Context)
	SignIn(c *gin.Context)
	SignOut(c *gin.Context)
	ResetPassword(c *gin.Context)
	ResetPasswordByToken(c *gin.Context)
}

type authController struct {
	service services.AuthService
}

// NewAuthController creates an AuthController.
func NewAuthController(service services.AuthService) AuthController {
	return &authController{service: service}
}

func (ctl *authController) SignUp(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, httperr.UnprocessableEntity("Invalid request body"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, token, err := ctl.service.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

func (ctl *authController) SignIn(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, httperr.UnprocessableEntity("Invalid request body"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, token, err := ctl.service.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// SignOut is stateless with Bearer tokens; the client discards its token.
func (ctl *authController) SignOut(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{})
}

func (ctl *authController) ResetPassword(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, httperr.UnprocessableEntity("Invalid request body"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := ctl.service.RequestPasswordReset(ctx, req.Email); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (ctl *authController) ResetPasswordByToken(c *gin.Context) {
	token := c.Param("token")

	var req passwordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, httperr.UnprocessableEntity("Invalid request body"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := ctl.service.ResetPassword(ctx, token, req.Password); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusOK)
}
