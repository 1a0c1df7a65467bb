package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/hotel-brand-api/services"
	"github.com/yeremiapane/hotel-brand-api/utils"
)

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Service: svc}
}

func (ac *AuthController) Login(c *gin.Context) {
	res, err := ac.Service.Login(c.Request.Context(), body(c))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Login successful", res)
}

// Me returns the profile of the caller.
func (ac *AuthController) Me(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	user, err := ac.Service.Me(c.Request.Context(), id)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Current user", user)
}
