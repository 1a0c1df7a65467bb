package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/hotel-brand-api/policy"
	"github.com/yeremiapane/hotel-brand-api/utils"
)

// RequireAction stops the request before the handler runs, and before the
// body is read, when the caller's role is not allowed to perform action.
func RequireAction(action policy.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := CurrentIdentity(c)
		if !ok {
			utils.RespondAppError(c, utils.NewUnauthenticated("unauthorized"))
			return
		}
		if err := policy.Authorize(id, action); err != nil {
			utils.RespondAppError(c, err)
			return
		}
		c.Next()
	}
}
