package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"pizza-backend/internal/httperr"
	"pizza-backend/internal/models"
	"pizza-backend/internal/store"
)

const (
	accessTokenTTL = 24 * time.Hour
	resetTokenTTL  = 24 * time.Hour
)

// AuthService handles sign-up, sign-in and the password-reset flow.
type AuthService interface {
	SignUp(ctx context.Context, email, password string) (models.User, string, error)
	SignIn(ctx context.Context, email, password string) (models.User, string, error)
	// RequestPasswordReset issues a reset token for the account. The token
	// reaches the user out of band; it is never part of the response.
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
}

type authService struct {
	users     store.UserStore
	userSvc   UserService
	jwtSecret string
}

// NewAuthService creates an AuthService signing tokens with jwtSecret.
func NewAuthService(users store.UserStore, userSvc UserService, jwtSecret string) AuthService {
	return &authService{users: users, userSvc: userSvc, jwtSecret: jwtSecret}
}

func (s *authService) signToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID.Hex(),
		"email": user.Email,
		"exp":   time.Now().Add(accessTokenTTL).Unix(),
		"iat":   time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
}

func (s *authService) SignUp(ctx context.Context, email, password string) (models.User, string, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return models.User{}, "", err
	}
	if existing != nil {
		return models.User{}, "", httperr.BadRequest("Email is already in use")
	}

	user, err := s.userSvc.Create(ctx, email, password)
	if err != nil {
		return models.User{}, "", err
	}

	token, err := s.signToken(user)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

func (s *authService) SignIn(ctx context.Context, email, password string) (models.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return models.User{}, "", err
	}
	// Same failure for unknown email and wrong password.
	if user == nil {
		return models.User{}, "", httperr.BadRequest("Invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, "", httperr.BadRequest("Invalid credentials")
	}

	token, err := s.signToken(*user)
	if err != nil {
		return models.User{}, "", err
	}
	return *user, token, nil
}

func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return httperr.BadRequest("Invalid credentials")
	}

	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return err
	}
	token := hex.EncodeToString(buf)

	return s.users.SetResetToken(ctx, user.ID, token, time.Now().Add(resetTokenTTL))
}

func (s *authService) ResetPassword(ctx context.Context, token, password string) error {
	user, err := s.users.FindByResetToken(ctx, token)
	if err != nil {
		return err
	}
	if user == nil || user.ResetToken == "" {
		return httperr.Forbidden("Token invalid")
	}
	if time.Now().After(user.ResetTokenExpires) {
		return httperr.Forbidden("Token invalid")
	}

	_, err = s.userSvc.UpdatePassword(ctx, user.ID, password)
	return err
}
