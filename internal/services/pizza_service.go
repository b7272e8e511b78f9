package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pizza-backend/internal/httperr"
	"pizza-backend/internal/models"
	"pizza-backend/internal/store"
)

// PizzaService exposes the menu operations.
type PizzaService interface {
	Create(ctx context.Context, pizza models.Pizza) (models.Pizza, error)
	GetAll(ctx context.Context) ([]models.Pizza, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Pizza, error)
	Update(ctx context.Context, id primitive.ObjectID, pizza models.Pizza) (models.Pizza, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type pizzaService struct {
	pizzas store.PizzaStore
}

// NewPizzaService creates a PizzaService on top of the given store.
func NewPizzaService(pizzas store.PizzaStore) PizzaService {
	return &pizzaService{pizzas: pizzas}
}

func (s *pizzaService) Create(ctx context.Context, pizza models.Pizza) (models.Pizza, error) {
	return s.pizzas.Insert(ctx, pizza)
}

func (s *pizzaService) GetAll(ctx context.Context) ([]models.Pizza, error) {
	pizzas, err := s.pizzas.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(pizzas) == 0 {
		return nil, httperr.NotFound("Pizzas not found")
	}
	return pizzas, nil
}

func (s *pizzaService) GetByID(ctx context.Context, id primitive.ObjectID) (models.Pizza, error) {
	pizza, err := s.pizzas.FindByID(ctx, id)
	if err != nil {
		return models.Pizza{}, err
	}
	if pizza == nil {
		return models.Pizza{}, httperr.NotFound("Pizza not found")
	}
	return *pizza, nil
}

func (s *pizzaService) Update(ctx context.Context, id primitive.ObjectID, pizza models.Pizza) (models.Pizza, error) {
	updated, err := s.pizzas.Replace(ctx, id, pizza)
	if err != nil {
		return models.Pizza{}, err
	}
	if updated == nil {
		return models.Pizza{}, httperr.NotFound("Pizza not found")
	}
	return *updated, nil
}

func (s *pizzaService) Delete(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.pizzas.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return httperr.NotFound("Pizza not found")
	}
	return nil
}
