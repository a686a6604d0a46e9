package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/blues/ets/internal/logic"
	"github.com/blues/ets/internal/model"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

const actorContextKey = "actor"

// errorJSON maps the logic error taxonomy onto HTTP status codes and
// writes the error body.
func errorJSON(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, logic.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, logic.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, logic.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, logic.ErrValidation):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// actorFrom returns the member the auth middleware resolved for this
// request.
func actorFrom(c *gin.Context) *model.Member {
	actor, _ := c.MustGet(actorContextKey).(*model.Member)
	return actor
}

// parseDateParam parses an optional YYYY-MM-DD value.
func parseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, value, time.UTC)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
