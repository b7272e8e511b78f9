package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PizzaStatus tracks a single line item through the fulfillment pipeline.
// Stored and transmitted as a string label; the ordinal mapping
// (ordered=0 .. done=4) exists only for compatibility with historical data.
type PizzaStatus string

const (
	StatusOrdered    PizzaStatus = "ordered"
	StatusOven       PizzaStatus = "oven"
	StatusReady      PizzaStatus = "ready"
	StatusDelivering PizzaStatus = "delivering"
	StatusDone       PizzaStatus = "done"
)

// PizzaStatuses lists every status in pipeline order.
func PizzaStatuses() []PizzaStatus {
	return []PizzaStatus{StatusOrdered, StatusOven, StatusReady, StatusDelivering, StatusDone}
}

// Valid reports whether s is a member of the status enumeration.
func (s PizzaStatus) Valid() bool {
	switch s {
	case StatusOrdered, StatusOven, StatusReady, StatusDelivering, StatusDone:
		return true
	}
	return false
}

// Customer captures contact details for an order. It has no identity of
// its own; it only exists embedded in an Order.
type Customer struct {
	Name    string `bson:"name" json:"name"`
	Address string `bson:"address" json:"address"`
}

// OrderedPizza is one line item: a menu snapshot plus its own status.
// Line items are addressed by position within Order.Pizzas.
type OrderedPizza struct {
	Pizza  PizzaSnapshot `bson:"pizza" json:"pizza"`
	Status PizzaStatus   `bson:"status" json:"status"`
}

// Order is the persisted order document. Pizzas is never empty.
type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Customer  Customer           `bson:"customer" json:"customer"`
	Pizzas    []OrderedPizza     `bson:"pizzas" json:"pizzas"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
