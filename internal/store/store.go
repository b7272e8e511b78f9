// Package store wraps the MongoDB collections behind per-aggregate
// interfaces so the service layer can be exercised against mocks.
package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pizza-backend/internal/models"
)

// PizzaStore persists menu items. Find methods return nil (not an error)
// when no document matches.
type PizzaStore interface {
	Insert(ctx context.Context, pizza models.Pizza) (models.Pizza, error)
	FindAll(ctx context.Context) ([]models.Pizza, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Pizza, error)
	Replace(ctx context.Context, id primitive.ObjectID, pizza models.Pizza) (*models.Pizza, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// OrderStore persists orders. SetPizzaStatus performs an atomic
// field-path update of a single line item's status.
type OrderStore interface {
	Insert(ctx context.Context, order models.Order) (models.Order, error)
	FindAll(ctx context.Context) ([]models.Order, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	Replace(ctx context.Context, id primitive.ObjectID, customer models.Customer, pizzas []models.OrderedPizza) (*models.Order, error)
	SetPizzaStatus(ctx context.Context, id primitive.ObjectID, index int, status models.PizzaStatus) (*models.Order, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// UserStore persists user accounts.
type UserStore interface {
	Insert(ctx context.Context, user models.User) (models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByResetToken(ctx context.Context, token string) (*models.User, error)
	UpdateEmail(ctx context.Context, id primitive.ObjectID, email string) (*models.User, error)
	UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) (*models.User, error)
	SetResetToken(ctx context.Context, id primitive.ObjectID, token string, expires time.Time) error
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
