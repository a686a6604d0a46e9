package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/blues/ets/internal/logic"
	"github.com/gin-gonic/gin"
)

// AuthRequired resolves the actor from the Authorization header and
// aborts with 401 when the token is missing, unknown or expired.
func AuthRequired(authLogic *logic.AuthLogic) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		actor, err := authLogic.ResolveActor(token)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, logic.ErrUnauthenticated) {
				status = http.StatusUnauthorized
			}
			c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
			return
		}

		c.Set(actorContextKey, actor)
		c.Next()
	}
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	// A bare token without the scheme is accepted too.
	return strings.TrimSpace(header)
}
