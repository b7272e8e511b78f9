package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pizza-backend/internal/httperr"
	"pizza-backend/internal/models"
	"pizza-backend/internal/services"
)

// PizzaController handles the /api/pizzas routes.
type PizzaController interface {
	Create(c *gin.Context)
	GetAll(c *gin.Context)
	GetByID(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type pizzaController struct {
	service services.PizzaService
}

// NewPizzaController creates a PizzaController.
func NewPizzaController(service services.PizzaService) PizzaController {
	return &pizzaController{service: service}
}

type pizzaRequest struct {
	Name  string  `json:"name"`
	Image string  `json:"image"`
	Price float64 `json:"price"`
}

func (r pizzaRequest) model() models.Pizza {
	return models.Pizza{
		Name:  r.Name,
		Image: r.Image,
		Price: r.Price,
	}
}

func (ctl *pizzaController) Create(c *gin.Context) {
	var req pizzaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, httperr.UnprocessableEntity("Invalid request body"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	pizza, err := ctl.service.Create(ctx, req.model())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, pizza)
}

func (ctl *pizzaController) GetAll(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	pizzas, err := ctl.service.GetAll(ctx)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, pizzas)
}

func (ctl *pizzaController) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	pizza, err := ctl.service.GetByID(ctx, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, pizza)
}

func (ctl *pizzaController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req pizzaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, httperr.UnprocessableEntity("Invalid request body"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	pizza, err := ctl.service.Update(ctx, id, req.model())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, pizza)
}

func (ctl *pizzaController) Delete(c *gin.Context) {
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
	c.JSON(http.StatusOK, gin.H{"message": "Pizza deleted successfully"})
}
