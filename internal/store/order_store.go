package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pizza-backend/internal/models"
)

type orderStore struct {
	collection *mongo.Collection
}

// NewOrderStore returns an OrderStore backed by the orders collection.
func NewOrderStore(db *mongo.Database) OrderStore {
	return &orderStore{collection: db.Collection("orders")}
}

func (s *orderStore) Insert(ctx context.Context, order models.Order) (models.Order, error) {
	order.ID = primitive.NilObjectID
	order.CreatedAt = now()
	order.UpdatedAt = order.CreatedAt

	res, err := s.collection.InsertOne(ctx, order)
	if err != nil {
		return models.Order{}, err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		order.ID = id
	}
	return order, nil
}

func (s *orderStore) FindAll(ctx context.Context) ([]models.Order, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *orderStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	var order models.Order
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *orderStore) Replace(ctx context.Context, id primitive.ObjectID, customer models.Customer, pizzas []models.OrderedPizza) (*models.Order, error) {
	update := bson.M{"$set": bson.M{
		"customer":  customer,
		"pizzas":    pizzas,
		"updatedAt": now(),
	}}

	var updated models.Order
	err := s.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// SetPizzaStatus touches exactly one line item's status via a positional
// field path; the rest of the document is left alone.
func (s *orderStore) SetPizzaStatus(ctx context.Context, id primitive.ObjectID, index int, status models.PizzaStatus) (*models.Order, error) {
	update := bson.M{"$set": bson.M{
		fmt.Sprintf("pizzas.%d.status", index): status,
		"updatedAt":                            now(),
	}}

	var updated models.Order
	err := s.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *orderStore) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
