package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	repo "github.com/oksasatya/devpad-api/internal/domain/repository"
	"github.com/oksasatya/devpad-api/pkg/response"
)

const (
	CtxUserIDKey = "userID"
	CtxTokenKey  = "token"
)

// Auth resolves the bearer token from the Authorization header against
// the token store. On success it sets userID and the raw token in the
// Gin context; handlers behind it never see an unauthenticated request.
func Auth(tokens repo.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := bearerToken(c.GetHeader("Authorization"))
		if tok == "" {
			response.Unauthenticated(c)
			return
		}
		userID, err := tokens.Resolve(c.Request.Context(), tok)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				response.Unauthenticated(c)
				return
			}
			// A store outage is not an authentication verdict.
			response.ServerError(c)
			return
		}
		c.Set(CtxUserIDKey, userID)
		c.Set(CtxTokenKey, tok)
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
