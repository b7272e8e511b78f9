package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"pizza-backend/internal/httperr"
	"pizza-backend/internal/models"
	"pizza-backend/internal/store"
)

const bcryptCost = 12

// UserService exposes the user account operations. Passwords cross this
// boundary in plain text and are stored only as bcrypt hashes.
type UserService interface {
	Create(ctx context.Context, email, password string) (models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	UpdateEmail(ctx context.Context, id primitive.ObjectID, email string) (models.User, error)
	UpdatePassword(ctx context.Context, id primitive.ObjectID, password string) (models.User, error)
	// UpdateOwnPassword verifies the old password before replacing it.
	UpdateOwnPassword(ctx context.Context, id primitive.ObjectID, oldPassword, password string) (models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type userService struct {
	users store.UserStore
}

// NewUserService creates a UserService on top of the given store.
func NewUserService(users store.UserStore) UserService {
	return &userService{users: users}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *userService) Create(ctx context.Context, email, password string) (models.User, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	user, err := s.users.Insert(ctx, models.User{
		Email:        email,
		PasswordHash: hash,
	})
	if mongo.IsDuplicateKeyError(err) {
		return models.User{}, httperr.BadRequest("Email is already in use")
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *userService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx)
}

func (s *userService) GetByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	if user == nil {
		return models.User{}, httperr.NotFound("User not found")
	}
	return *user, nil
}

func (s *userService) UpdateEmail(ctx context.Context, id primitive.ObjectID, email string) (models.User, error) {
	updated, err := s.users.UpdateEmail(ctx, id, email)
	if mongo.IsDuplicateKeyError(err) {
		return models.User{}, httperr.BadRequest("Email is already in use")
	}
	if err != nil {
		return models.User{}, err
	}
	if updated == nil {
		return models.User{}, httperr.NotFound("User not found")
	}
	return *updated, nil
}

func (s *userService) UpdatePassword(ctx context.Context, id primitive.ObjectID, password string) (models.User, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	updated, err := s.users.UpdatePassword(ctx, id, hash)
	if err != nil {
		return models.User{}, err
	}
	if updated == nil {
		return models.User{}, httperr.NotFound("User not found")
	}
	return *updated, nil
}

func (s *userService) UpdateOwnPassword(ctx context.Context, id primitive.ObjectID, oldPassword, password string) (models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	if user == nil {
		return models.User{}, httperr.NotFound("User not found")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)) != nil {
		return models.User{}, httperr.BadRequest("Invalid credentials")
	}
	return s.UpdatePassword(ctx, id, password)
}

func (s *userService) Delete(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return httperr.NotFound("User not found")
	}
	return nil
}
