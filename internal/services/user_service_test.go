package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"pizza-backend/internal/mocks"
	"pizza-backend/internal/models"
)

func TestUserServiceGetByID(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("returns the user", func(t *testing.T) {
		user := models.User{ID: userID, Email: "user@example.com"}
		users := new(mocks.MockUserStore)
		users.On("FindByID", mock.Anything, userID).Return(&user, nil)

		got, err := NewUserService(users).GetByID(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("fails for an unknown id", func(t *testing.T) {
		users := new(mocks.MockUserStore)
		users.On("FindByID", mock.Anything, userID).Return(nil, nil)

		_, err := NewUserService(users).GetByID(context.Background(), userID)

		assertHTTPError(t, err, http.StatusNotFound, "User not found")
	})
}

func TestUserServiceUpdateOwnPassword(t *testing.T) {
	user := userFixture(t, "user@example.com", "OldPassword1!")

	t.Run("verifies the old password before replacing it", func(t *testing.T) {
		users := new(mocks.MockUserStore)
		users.On("FindByID", mock.Anything, user.ID).Return(&user, nil)
		users.On("UpdatePassword", mock.Anything, user.ID, mock.MatchedBy(func(hash string) bool {
			return bcrypt.CompareHashAndPassword([]byte(hash), []byte("NewPassword1!")) == nil
		})).Return(&user, nil)

		_, err := NewUserService(users).UpdateOwnPassword(context.Background(), user.ID, "OldPassword1!", "NewPassword1!")

		require.NoError(t, err)
		users.AssertExpectations(t)
	})

	t.Run("rejects a wrong old password", func(t *testing.T) {
		users := new(mocks.MockUserStore)
		users.On("FindByID", mock.Anything, user.ID).Return(&user, nil)

		_, err := NewUserService(users).UpdateOwnPassword(context.Background(), user.ID, "WrongPassword1!", "NewPassword1!")

		assertHTTPError(t, err, http.StatusBadRequest, "Invalid credentials")
		users.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUserServiceUpdateEmail(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("fails for an unknown id", func(t *testing.T) {
		users := new(mocks.MockUserStore)
		users.On("UpdateEmail", mock.Anything, userID, "new@example.com").Return(nil, nil)

		_, err := NewUserService(users).UpdateEmail(context.Background(), userID, "new@example.com")

		assertHTTPError(t, err, http.StatusNotFound, "User not found")
	})
}

func TestUserServiceDelete(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("fails for an unknown id", func(t *testing.T) {
		users := new(mocks.MockUserStore)
		users.On("Delete", mock.Anything, userID).Return(false, nil)

		err := NewUserService(users).Delete(context.Background(), userID)

		assertHTTPError(t, err, http.StatusNotFound, "User not found")
	})
}
