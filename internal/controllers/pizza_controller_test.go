package controllers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pizza-backend/internal/httperr"
	"pizza-backend/internal/mocks"
	"pizza-backend/internal/models"
	"pizza-backend/internal/services"
	"pizza-backend/internal/validation"
)

func newPizzaTestRouter(pizzas *mocks.MockPizzaStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctl := NewPizzaController(services.NewPizzaService(pizzas))

	r := gin.New()
	r.Use(httperr.Renderer(false))
	r.POST("/api/pizzas", validation.Validate(validation.CreatePizza...), ctl.Create)
	r.GET("/api/pizzas", ctl.GetAll)
	r.GET("/api/pizzas/:id", validation.Validate(validation.GetPizzaByID...), ctl.GetByID)
	return r
}

func TestCreatePizzaEndpoint(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	pizzas := new(mocks.MockPizzaStore)
	pizzas.On("Insert", mock.Anything, mock.MatchedBy(func(p models.Pizza) bool {
		return p.Name == "Margherita" && p.Image == "margherita.png" && p.Price == 8.5
	})).Return(models.Pizza{
		ID:        primitive.NewObjectID(),
		Name:      "Margherita",
		Image:     "margherita.png",
		Price:     8.5,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil)

	r := newPizzaTestRouter(pizzas)
	w := performJSON(r, http.MethodPost, "/api/pizzas",
		`{"name":"Margherita","image":"margherita.png","price":8.5}`)

	require.Equal(t, http.StatusCreated, w.Code)
	var pizza models.Pizza
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pizza))
	assert.False(t, pizza.ID.IsZero())
	assert.Equal(t, "Margherita", pizza.Name)
	assert.Equal(t, 8.5, pizza.Price)
	assert.False(t, pizza.CreatedAt.IsZero())
	pizzas.AssertExpectations(t)
}

func TestCreatePizzaEndpointRejectsMissingPrice(t *testing.T) {
	pizzas := new(mocks.MockPizzaStore)

	r := newPizzaTestRouter(pizzas)
	w := performJSON(r, http.MethodPost, "/api/pizzas",
		`{"name":"Margherita","image":"margherita.png"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Invalid value: [body / price] (undefined)", errorMessage(t, w))
	pizzas.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestGetPizzaEndpointNotFound(t *testing.T) {
	pizzaID := primitive.NewObjectID()
	pizzas := new(mocks.MockPizzaStore)
	pizzas.On("FindByID", mock.Anything, pizzaID).Return(nil, nil)

	r := newPizzaTestRouter(pizzas)
	w := performJSON(r, http.MethodGet, "/api/pizzas/"+pizzaID.Hex(), "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Pizza not found", errorMessage(t, w))
}

func TestGetPizzasEndpointEmptyMenu(t *testing.T) {
	pizzas := new(mocks.MockPizzaStore)
	pizzas.On("FindAll", mock.Anything).Return([]models.Pizza{}, nil)

	r := newPizzaTestRouter(pizzas)
	w := performJSON(r, http.MethodGet, "/api/pizzas", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Pizzas not found", errorMessage(t, w))
}
