package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pizza-backend/internal/httperr"
	"pizza-backend/internal/models"
	"pizza-backend/internal/services"
)

// OrderController handles the /api/orders routes.
type OrderController interface {
	Create(c *gin.Context)
	GetAll(c *gin.Context)
	GetByID(c *gin.Context)
	Update(c *gin.Context)
	UpdatePizzaStatus(c *gin.Context)
	Delete(c *gin.Context)
}

type orderController struct {
	service services.OrderService
}

// NewOrderController creates an OrderController.
func NewOrderController(service services.OrderService) OrderController {
	return &orderController{service: service}
}

type orderRequest struct {
	Customer models.Customer `json:"customer"`
	Pizzas   []string        `json:"pizzas"`
}

type statusPatchRequest struct {
	Index  int                `json:"index"`
	Status models.PizzaStatus `json:"status"`
}

func (r orderRequest) pizzaIDs() []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(r.Pizzas))
	for _, raw := range r.Pizzas {
		if id, err := primitive.ObjectIDFromHex(raw); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

func (ctl *orderController) Create(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, httperr.UnprocessableEntity("Invalid request body"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	order, err := ctl.service.Create(ctx, req.Customer, req.pizzaIDs())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (ctl *orderController) GetAll(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	orders, err := ctl.service.GetAll(ctx)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (ctl *orderController) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	order, err := ctl.service.GetByID(ctx, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (ctl *orderController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, httperr.UnprocessableEntity("Invalid request body"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	order, err := ctl.service.Update(ctx, id, req.Customer, req.pizzaIDs())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (ctl *orderController) UpdatePizzaStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req statusPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, httperr.UnprocessableEntity("Invalid request body"))
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	order, err := ctl.service.UpdatePizzaStatus(ctx, id, req.Index, req.Status)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (ctl *orderController) Delete(c *gin.Context) {
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
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
