package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/hotel-brand-api/middlewares"
	"github.com/yeremiapane/hotel-brand-api/policy"
	"github.com/yeremiapane/hotel-brand-api/utils"
	"github.com/yeremiapane/hotel-brand-api/validation"
)

// caller returns the authenticated identity, answering 401 itself when the
// route was mounted without AuthMiddleware.
func caller(c *gin.Context) (policy.Identity, bool) {
	id, ok := middlewares.CurrentIdentity(c)
	if !ok {
		utils.RespondAppError(c, utils.NewUnauthenticated("unauthorized"))
	}
	return id, ok
}

// body defers reading the JSON payload until the service asks for it.
func body(c *gin.Context) validation.Decoder {
	return func(dst interface{}) error {
		return c.ShouldBindJSON(dst)
	}
}
