package database

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureUserIndexes creates the unique email index on the users collection.
func EnsureUserIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	emailIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetName("email_unique").
			SetUnique(true),
	}

	if _, err := db.Collection("users").Indexes().CreateOne(ctx, emailIndex); err != nil {
		log.WithError(err).Error("users email index")
		return err
	}
	return nil
}

// EnsureUserResetTokenIndex indexes the password-reset token so the
// confirm endpoint does not scan the collection.
func EnsureUserResetTokenIndex(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tokenIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "resetToken", Value: 1}},
		Options: options.Index().
			SetName("resetToken_index").
			SetPartialFilterExpression(bson.M{
				"resetToken": bson.M{"$exists": true},
			}),
	}

	if _, err := db.Collection("users").Indexes().CreateOne(ctx, tokenIndex); err != nil {
		log.WithError(err).Error("users resetToken index")
		return err
	}
	return nil
}
