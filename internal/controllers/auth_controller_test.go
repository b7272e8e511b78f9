package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"pizza-backend/internal/httperr"
	"pizza-backend/internal/middleware"
	"pizza-backend/internal/mocks"
	"pizza-backend/internal/models"
	"pizza-backend/internal/services"
	"pizza-backend/internal/validation"
)

const testJWTSecret = "test-secret"

func newAuthTestRouter(users *mocks.MockUserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	userSvc := services.NewUserService(users)
	authCtl := NewAuthController(services.NewAuthService(users, userSvc, testJWTSecret))
	userCtl := NewUserController(userSvc)

	r := gin.New()
	r.Use(httperr.Renderer(false))
	api := r.Group("/api", middleware.CurrentUser(testJWTSecret))
	api.POST("/auth/sign-up", validation.Validate(validation.SignUp...), authCtl.SignUp)
	api.POST("/auth/sign-in", validation.Validate(validation.SignIn...), authCtl.SignIn)
	api.GET("/users/me", middleware.RequireAuth(), userCtl.GetMe)
	return r
}

func TestSignUpThenFetchOwnProfile(t *testing.T) {
	userID := primitive.NewObjectID()
	created := models.User{ID: userID, Email: "new@example.com"}

	users := new(mocks.MockUserStore)
	users.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, nil)
	users.On("Insert", mock.Anything, mock.AnythingOfType("models.User")).Return(created, nil)
	users.On("FindByID", mock.Anything, userID).Return(&created, nil)

	r := newAuthTestRouter(users)

	w := performJSON(r, http.MethodPost, "/api/auth/sign-up",
		`{"email":"new@example.com","password":"Password1!"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var signUpBody struct {
		User  models.User `json:"user"`
		Token string      `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &signUpBody))
	assert.Equal(t, "new@example.com", signUpBody.User.Email)
	require.NotEmpty(t, signUpBody.Token)
	// The hash never leaves the server.
	assert.NotContains(t, w.Body.String(), "passwordHash")

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", strings.NewReader(""))
	req.Header.Set("Authorization", "Bearer "+signUpBody.Token)
	me := httptest.NewRecorder()
	r.ServeHTTP(me, req)

	require.Equal(t, http.StatusOK, me.Code)
	var profile models.User
	require.NoError(t, json.Unmarshal(me.Body.Bytes(), &profile))
	assert.Equal(t, userID, profile.ID)
}

func TestSignUpRejectsWeakPassword(t *testing.T) {
	users := new(mocks.MockUserStore)

	r := newAuthTestRouter(users)
	w := performJSON(r, http.MethodPost, "/api/auth/sign-up",
		`{"email":"new@example.com","password":"weak"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.NotContains(t, w.Body.String(), "weak")
	users.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestSignInEndpoint(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Password1!"), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		ID:           primitive.NewObjectID(),
		Email:        "user@example.com",
		PasswordHash: string(hash),
	}

	t.Run("returns a token for valid credentials", func(t *testing.T) {
		users := new(mocks.MockUserStore)
		users.On("FindByEmail", mock.Anything, user.Email).Return(&user, nil)

		r := newAuthTestRouter(users)
		w := performJSON(r, http.MethodPost, "/api/auth/sign-in",
			`{"email":"user@example.com","password":"Password1!"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"token"`)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		users := new(mocks.MockUserStore)
		users.On("FindByEmail", mock.Anything, user.Email).Return(&user, nil)

		r := newAuthTestRouter(users)
		w := performJSON(r, http.MethodPost, "/api/auth/sign-in",
			`{"email":"user@example.com","password":"Password2!"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid credentials", errorMessage(t, w))
	})

	t.Run("requires auth for the profile route", func(t *testing.T) {
		r := newAuthTestRouter(new(mocks.MockUserStore))
		w := performJSON(r, http.MethodGet, "/api/users/me", "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Unauthorized", errorMessage(t, w))
	})
}
