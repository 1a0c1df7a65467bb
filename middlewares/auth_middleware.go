package middlewares

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/hotel-brand-api/policy"
	"github.com/yeremiapane/hotel-brand-api/utils"
)

const identityKey = "identity"

// Authenticator resolves a bearer token to the caller behind it.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (policy.Identity, error)
}

// AuthMiddleware requires a valid bearer token and stores the resolved
// identity on the context for the rest of the request.
func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			utils.RespondAppError(c, utils.NewUnauthenticated("authorization header missing"))
			return
		}
		if !strings.HasPrefix(header, "Bearer ") {
			utils.RespondAppError(c, utils.NewUnauthenticated("authorization header must use the Bearer scheme"))
			return
		}

		id, err := auth.Authenticate(c.Request.Context(), strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")))
		if err != nil {
			utils.RespondAppError(c, err)
			return
		}

		utils.InfoLogger.WithFields(logrus.Fields{
			"user_id": id.UserID,
			"role":    id.Role,
		}).Debug("request authenticated")

		c.Set(identityKey, id)
		c.Next()
	}
}

// CurrentIdentity returns the identity set by AuthMiddleware.
func CurrentIdentity(c *gin.Context) (policy.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return policy.Identity{}, false
	}
	id, ok := v.(policy.Identity)
	return id, ok
}
