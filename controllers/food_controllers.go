package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/hotel-brand-api/services"
	"github.com/yeremiapane/hotel-brand-api/utils"
)

type FoodController struct {
	Service *services.FoodService
}

func NewFoodController(svc *services.FoodService) *FoodController {
	return &FoodController{Service: svc}
}

func (fc *FoodController) GetAllFoods(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	foods, err := fc.Service.List(c.Request.Context(), id)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of foods", foods)
}

// GetFoodsByBrand -> menu of one hotel brand
func (fc *FoodController) GetFoodsByBrand(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	foods, err := fc.Service.ListByBrand(c.Request.Context(), id, c.Param("hotelBrandId"))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of foods", foods)
}

func (fc *FoodController) CreateFood(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	food, err := fc.Service.Create(c.Request.Context(), id, body(c))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Food created successfully", food)
}

func (fc *FoodController) UpdateFood(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	food, err := fc.Service.Update(c.Request.Context(), id, c.Param("id"), body(c))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Food updated", food)
}

func (fc *FoodController) DeleteFood(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	if err := fc.Service.Delete(c.Request.Context(), id, c.Param("id")); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Food deleted", nil)
}
