package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/hotel-brand-api/services"
	"github.com/yeremiapane/hotel-brand-api/utils"
)

type UserController struct {
	Service *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{Service: svc}
}

func (uc *UserController) GetAllUsers(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	users, err := uc.Service.List(c.Request.Context(), id)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of users", users)
}

func (uc *UserController) CreateUser(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	user, err := uc.Service.Create(c.Request.Context(), id, body(c))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "User created", user)
}

func (uc *UserController) UpdateUser(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	user, err := uc.Service.Update(c.Request.Context(), id, c.Param("id"), body(c))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "User updated", user)
}

func (uc *UserController) DeleteUser(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	if err := uc.Service.Delete(c.Request.Context(), id, c.Param("id")); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "User deleted", nil)
}
