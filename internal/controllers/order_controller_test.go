package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

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

// The controller tests run the full request pipeline: validation rules,
// controller, service and mocked stores.
func newOrderTestRouter(orders *mocks.MockOrderStore, pizzas *mocks.MockPizzaStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctl := NewOrderController(services.NewOrderService(orders, pizzas))

	r := gin.New()
	r.Use(httperr.Renderer(false))
	r.POST("/api/orders", validation.Validate(validation.CreateOrder...), ctl.Create)
	r.GET("/api/orders/:id", validation.Validate(validation.GetOrderByID...), ctl.GetByID)
	r.PATCH("/api/orders/:id/status", validation.Validate(validation.UpdateOrderedPizzaStatus...), ctl.UpdatePizzaStatus)
	r.DELETE("/api/orders/:id", validation.Validate(validation.DeleteOrder...), ctl.Delete)
	return r
}

func performJSON(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Message
}

func TestCreateOrderEndpoint(t *testing.T) {
	margherita := models.Pizza{
		ID:    primitive.NewObjectID(),
		Name:  "Margherita",
		Image: "margherita.png",
		Price: 8.5,
	}

	orders := new(mocks.MockOrderStore)
	pizzas := new(mocks.MockPizzaStore)
	pizzas.On("FindByID", mock.Anything, margherita.ID).Return(&margherita, nil)
	orders.On("Insert", mock.Anything, mock.AnythingOfType("models.Order")).
		Return(models.Order{
			ID:       primitive.NewObjectID(),
			Customer: models.Customer{Name: "customer", Address: "address"},
			Pizzas: []models.OrderedPizza{
				{Pizza: margherita.Snapshot(), Status: models.StatusOrdered},
			},
		}, nil)

	r := newOrderTestRouter(orders, pizzas)
	w := performJSON(r, http.MethodPost, "/api/orders",
		`{"customer":{"name":"customer","address":"address"},"pizzas":["`+margherita.ID.Hex()+`"]}`)

	require.Equal(t, http.StatusCreated, w.Code)
	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	require.Len(t, order.Pizzas, 1)
	assert.Equal(t, "Margherita", order.Pizzas[0].Pizza.Name)
	assert.Equal(t, models.StatusOrdered, order.Pizzas[0].Status)
	orders.AssertExpectations(t)
}

func TestCreateOrderEndpointRejectsInvalidBody(t *testing.T) {
	orders := new(mocks.MockOrderStore)
	pizzas := new(mocks.MockPizzaStore)

	r := newOrderTestRouter(orders, pizzas)
	w := performJSON(r, http.MethodPost, "/api/orders",
		`{"customer":{"address":"address"},"pizzas":["645b9dd2c9c1e1f0a1b2c3d4"]}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Invalid value: [body / customer.name] (undefined)", errorMessage(t, w))
	pizzas.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	orders.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreateOrderEndpointWithNoResolvablePizzas(t *testing.T) {
	unknownID := primitive.NewObjectID()
	orders := new(mocks.MockOrderStore)
	pizzas := new(mocks.MockPizzaStore)
	pizzas.On("FindByID", mock.Anything, unknownID).Return(nil, nil)

	r := newOrderTestRouter(orders, pizzas)
	w := performJSON(r, http.MethodPost, "/api/orders",
		`{"customer":{"name":"customer","address":"address"},"pizzas":["`+unknownID.Hex()+`"]}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Pizzas not found", errorMessage(t, w))
	orders.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestPatchOrderStatusEndpoint(t *testing.T) {
	orderID := primitive.NewObjectID()
	stored := models.Order{
		ID:       orderID,
		Customer: models.Customer{Name: "customer", Address: "address"},
		Pizzas: []models.OrderedPizza{
			{Pizza: models.PizzaSnapshot{Name: "Margherita", Price: 8.5}, Status: models.StatusOrdered},
		},
	}
	patched := stored
	patched.Pizzas = []models.OrderedPizza{
		{Pizza: stored.Pizzas[0].Pizza, Status: models.StatusOven},
	}

	orders := new(mocks.MockOrderStore)
	orders.On("FindByID", mock.Anything, orderID).Return(&stored, nil)
	orders.On("SetPizzaStatus", mock.Anything, orderID, 0, models.StatusOven).Return(&patched, nil)

	r := newOrderTestRouter(orders, new(mocks.MockPizzaStore))
	w := performJSON(r, http.MethodPatch, "/api/orders/"+orderID.Hex()+"/status",
		`{"index":0,"status":"oven"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, models.StatusOven, order.Pizzas[0].Status)
	assert.Equal(t, "customer", order.Customer.Name)
	orders.AssertExpectations(t)
}

func TestPatchOrderStatusEndpointRejectsMalformedID(t *testing.T) {
	orders := new(mocks.MockOrderStore)

	r := newOrderTestRouter(orders, new(mocks.MockPizzaStore))
	w := performJSON(r, http.MethodPatch, "/api/orders/123/status", `{"index":0,"status":"oven"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Invalid ObjectId: [params / id] (123)", errorMessage(t, w))
	orders.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestDeleteOrderEndpoint(t *testing.T) {
	orderID := primitive.NewObjectID()

	t.Run("deletes an existing order", func(t *testing.T) {
		orders := new(mocks.MockOrderStore)
		orders.On("Delete", mock.Anything, orderID).Return(true, nil)

		r := newOrderTestRouter(orders, new(mocks.MockPizzaStore))
		w := performJSON(r, http.MethodDelete, "/api/orders/"+orderID.Hex(), "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Order deleted successfully")
	})

	t.Run("fails for an unknown order", func(t *testing.T) {
		orders := new(mocks.MockOrderStore)
		orders.On("Delete", mock.Anything, orderID).Return(false, nil)

		r := newOrderTestRouter(orders, new(mocks.MockPizzaStore))
		w := performJSON(r, http.MethodDelete, "/api/orders/"+orderID.Hex(), "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Order not found", errorMessage(t, w))
	})
}
