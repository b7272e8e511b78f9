package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Pizza is a menu item. Orders never reference it live; they copy its
// fields through Snapshot at order time.
type Pizza struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Image     string             `bson:"image" json:"image"`
	Price     float64            `bson:"price" json:"price"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PizzaSnapshot holds the menu fields captured into an order. Editing or
// deleting the menu entry afterwards does not touch existing orders.
type PizzaSnapshot struct {
	Name  string  `bson:"name" json:"name"`
	Image string  `bson:"image" json:"image"`
	Price float64 `bson:"price" json:"price"`
}

// Snapshot copies the order-relevant fields of the pizza.
func (p Pizza) Snapshot() PizzaSnapshot {
	return PizzaSnapshot{
		Name:  p.Name,
		Image: p.Image,
		Price: p.Price,
	}
}
