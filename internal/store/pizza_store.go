package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pizza-backend/internal/models"
)

type pizzaStore struct {
	collection *mongo.Collection
}

// NewPizzaStore returns a PizzaStore backed by the pizzas collection.
func NewPizzaStore(db *mongo.Database) PizzaStore {
	return &pizzaStore{collection: db.Collection("pizzas")}
}

func (s *pizzaStore) Insert(ctx context.Context, pizza models.Pizza) (models.Pizza, error) {
	pizza.ID = primitive.NilObjectID
	pizza.CreatedAt = now()
	pizza.UpdatedAt = pizza.CreatedAt

	res, err := s.collection.InsertOne(ctx, pizza)
	if err != nil {
		return models.Pizza{}, err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		pizza.ID = id
	}
	return pizza, nil
}

func (s *pizzaStore) FindAll(ctx context.Context) ([]models.Pizza, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var pizzas []models.Pizza
	if err := cursor.All(ctx, &pizzas); err != nil {
		return nil, err
	}
	return pizzas, nil
}

func (s *pizzaStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Pizza, error) {
	var pizza models.Pizza
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&pizza)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pizza, nil
}

func (s *pizzaStore) Replace(ctx context.Context, id primitive.ObjectID, pizza models.Pizza) (*models.Pizza, error) {
	update := bson.M{"$set": bson.M{
		"name":      pizza.Name,
		"image":     pizza.Image,
		"price":     pizza.Price,
		"updatedAt": now(),
	}}

	var updated models.Pizza
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

func (s *pizzaStore) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
