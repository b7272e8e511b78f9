// Package controllers maps HTTP requests onto single service operations.
// Field validation has already run by the time a handler executes; each
// handler binds its input, makes exactly one service call and writes the
// result, pushing failures to the httperr renderer.
package controllers

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pizza-backend/internal/httperr"
	"pizza-backend/internal/middleware"
)

const storeTimeout = 5 * time.Second

func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), storeTimeout)
}

func idParam(c *gin.Context) (primitive.ObjectID, bool) {
	raw := c.Param("id")
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		httperr.Abort(c, httperr.UnprocessableEntity(fmt.Sprintf("Invalid ObjectId: [params / id] (%s)", raw)))
		return primitive.NilObjectID, false
	}
	return id, true
}

func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	raw := c.GetString(middleware.ContextUserID)
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		httperr.Abort(c, httperr.Unauthorized("Unauthorized"))
		return primitive.NilObjectID, false
	}
	return id, true
}
