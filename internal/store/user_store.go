package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pizza-backend/internal/models"
)

type userStore struct {
	collection *mongo.Collection
}

// NewUserStore returns a UserStore backed by the users collection.
func NewUserStore(db *mongo.Database) UserStore {
	return &userStore{collection: db.Collection("users")}
}

func (s *userStore) Insert(ctx context.Context, user models.User) (models.User, error) {
	user.ID = primitive.NilObjectID
	user.CreatedAt = now()
	user.UpdatedAt = user.CreatedAt

	res, err := s.collection.InsertOne(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}
	return user, nil
}

func (s *userStore) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *userStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *userStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *userStore) FindByResetToken(ctx context.Context, token string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"resetToken": token})
}

func (s *userStore) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userStore) UpdateEmail(ctx context.Context, id primitive.ObjectID, email string) (*models.User, error) {
	return s.updateOne(ctx, id, bson.M{"$set": bson.M{
		"email":     email,
		"updatedAt": now(),
	}})
}

// UpdatePassword replaces the hash and discards any outstanding reset
// token so it cannot be replayed.
func (s *userStore) UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) (*models.User, error) {
	return s.updateOne(ctx, id, bson.M{
		"$set": bson.M{
			"passwordHash": passwordHash,
			"updatedAt":    now(),
		},
		"$unset": bson.M{
			"resetToken":        "",
			"resetTokenExpires": "",
		},
	})
}

func (s *userStore) SetResetToken(ctx context.Context, id primitive.ObjectID, token string, expires time.Time) error {
	_, err := s.updateOne(ctx, id, bson.M{"$set": bson.M{
		"resetToken":        token,
		"resetTokenExpires": expires,
		"updatedAt":         now(),
	}})
	return err
}

func (s *userStore) updateOne(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.User, error) {
	var updated models.User
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

func (s *userStore) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
