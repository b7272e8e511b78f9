package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the application user account. The password hash and the reset
// token fields never leave the server.
type User struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email             string             `bson:"email" json:"email"`
	PasswordHash      string             `bson:"passwordHash" json:"-"`
	Avatar            string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	ResetToken        string             `bson:"resetToken,omitempty" json:"-"`
	ResetTokenExpires time.Time          `bson:"resetTokenExpires,omitempty" json:"-"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}
