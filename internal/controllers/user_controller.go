package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pizza-backend/internal/httperr"
	"pizza-backend/internal/services"
)

// UserController handles the /api/users routes, including the /me
// self-service variants.
type UserController interface {
	Create(c *gin.Context)
	GetAll(c *gin.Context)
	GetMe(c *gin.Context)
	GetByID(c *gin.Context)
	UpdateMyEmail(c *gin.Context)
	UpdateEmailByID(c *gin.Context)
	UpdateMyPassword(c *gin.Context)
	UpdatePasswordByID(c *gin.Context)
	Delete(c *gin.Context)
}

type userController struct {
	service services.UserService
}

// NewUserController creates a UserController.
func NewUserController(service services.UserService) UserController {
	return &userController{service: service}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type emailRequest struct {
	Email string `json:"email"`
}

type passwordRequest struct {
	Password    string `json:"password"`
	OldPassword string `json:"oldPassword"`
}

func (ctl *userController) Create(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, httperr.UnprocessableEntity("Invalid request body"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := ctl.service.Create(ctx, req.Email, req.Password)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (ctl *userController) GetAll(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	users, err := ctl.service.GetAll(ctx)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (ctl *userController) GetMe(c *gin.Context) {
	id, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := ctl.service.GetByID(ctx, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ctl *userController) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := ctl.service.GetByID(ctx, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ctl *userController) UpdateMyEmail(c *gin.Context) {
	id, ok := currentUserID(c)
	if !ok {
		return
	}

	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, httperr.UnprocessableEntity("Invalid request body"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := ctl.service.UpdateEmail(ctx, id, req.Email)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ctl *userController) UpdateEmailByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, httperr.UnprocessableEntity("Invalid request body"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := ctl.service.UpdateEmail(ctx, id, req.Email)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ctl *userController) UpdateMyPassword(c *gin.Context) {
	id, ok := currentUserID(c)
	if !ok {
		return
	}

	var req passwordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, httperr.UnprocessableEntity("Invalid request body"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := ctl.service.UpdateOwnPassword(ctx, id, req.OldPassword, req.Password)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ctl *userController) UpdatePasswordByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req passwordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, httperr.UnprocessableEntity("Invalid request body"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := ctl.service.UpdatePassword(ctx, id, req.Password)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ctl *userController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := ctl.service.Delete(ctx, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
