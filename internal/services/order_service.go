package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pizza-backend/internal/httperr"
	"pizza-backend/internal/models"
	"pizza-backend/internal/store"
)

// OrderService exposes the order operations.
type OrderService interface {
	// Create resolves the pizza ids, snapshots each resolved pizza with
	// status "ordered" and persists the order.
	Create(ctx context.Context, customer models.Customer, pizzaIDs []primitive.ObjectID) (models.Order, error)
	// GetAll returns every order; an empty collection is a NotFound.
	GetAll(ctx context.Context) ([]models.Order, error)
	// GetByID returns a single order.
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Order, error)
	// Update fully replaces the customer and pizzas of an order, applying
	// the same pizza-resolution rule as Create.
	Update(ctx context.Context, id primitive.ObjectID, customer models.Customer, pizzaIDs []primitive.ObjectID) (models.Order, error)
	// UpdatePizzaStatus patches the status of the line item at index.
	UpdatePizzaStatus(ctx context.Context, id primitive.ObjectID, index int, status models.PizzaStatus) (models.Order, error)
	// Delete removes an order permanently.
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type orderService struct {
	orders store.OrderStore
	pizzas store.PizzaStore
}

// NewOrderService creates an OrderService on top of the given stores.
func NewOrderService(orders store.OrderStore, pizzas store.PizzaStore) OrderService {
	return &orderService{orders: orders, pizzas: pizzas}
}

// resolvePizzas looks every id up on the menu and snapshots the hits.
// Unknown ids are dropped silently; only a fully empty result is an error.
func (s *orderService) resolvePizzas(ctx context.Context, pizzaIDs []primitive.ObjectID) ([]models.OrderedPizza, error) {
	items := make([]models.OrderedPizza, 0, len(pizzaIDs))
	for _, id := range pizzaIDs {
		pizza, err := s.pizzas.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if pizza == nil {
			continue
		}
		items = append(items, models.OrderedPizza{
			Pizza:  pizza.Snapshot(),
			Status: models.StatusOrdered,
		})
	}
	if len(items) == 0 {
		return nil, httperr.NotFound("Pizzas not found")
	}
	return items, nil
}

func (s *orderService) Create(ctx context.Context, customer models.Customer, pizzaIDs []primitive.ObjectID) (models.Order, error) {
	pizzas, err := s.resolvePizzas(ctx, pizzaIDs)
	if err != nil {
		return models.Order{}, err
	}
	return s.orders.Insert(ctx, models.Order{
		Customer: customer,
		Pizzas:   pizzas,
	})
}

func (s *orderService) GetAll(ctx context.Context) ([]models.Order, error) {
	orders, err := s.orders.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, httperr.NotFound("Orders not found")
	}
	return orders, nil
}

func (s *orderService) GetByID(ctx context.Context, id primitive.ObjectID) (models.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return models.Order{}, err
	}
	if order == nil {
		return models.Order{}, httperr.NotFound("Order not found")
	}
	return *order, nil
}

func (s *orderService) Update(ctx context.Context, id primitive.ObjectID, customer models.Customer, pizzaIDs []primitive.ObjectID) (models.Order, error) {
	pizzas, err := s.resolvePizzas(ctx, pizzaIDs)
	if err != nil {
		return models.Order{}, err
	}
	updated, err := s.orders.Replace(ctx, id, customer, pizzas)
	if err != nil {
		return models.Order{}, err
	}
	if updated == nil {
		return models.Order{}, httperr.NotFound("Order not found")
	}
	return *updated, nil
}

func (s *orderService) UpdatePizzaStatus(ctx context.Context, id primitive.ObjectID, index int, status models.PizzaStatus) (models.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return models.Order{}, err
	}
	if order == nil {
		return models.Order{}, httperr.NotFound("Order not found")
	}
	// The index addresses the pizzas array as it is right now; a slot
	// beyond the end would silently create a hole in the document.
	if index < 0 || index >= len(order.Pizzas) {
		return models.Order{}, httperr.UnprocessableEntity(fmt.Sprintf("Index out of range: [body / index] (%d)", index))
	}

	updated, err := s.orders.SetPizzaStatus(ctx, id, index, status)
	if err != nil {
		return models.Order{}, err
	}
	if updated == nil {
		return models.Order{}, httperr.NotFound("Order not found")
	}
	return *updated, nil
}

func (s *orderService) Delete(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.orders.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return httperr.NotFound("Order not found")
	}
	return nil
}
