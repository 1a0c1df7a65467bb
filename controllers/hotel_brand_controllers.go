package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/hotel-brand-api/services"
	"github.com/yeremiapane/hotel-brand-api/utils"
)

type HotelBrandController struct {
	Service *services.HotelBrandService
}

func NewHotelBrandController(svc *services.HotelBrandService) *HotelBrandController {
	return &HotelBrandController{Service: svc}
}

func (hc *HotelBrandController) GetAllHotelBrands(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	brands, err := hc.Service.List(c.Request.Context(), id)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of hotel brands", brands)
}

// GetMyHotelBrand -> brand administered by the caller
func (hc *HotelBrandController) GetMyHotelBrand(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	brand, err := hc.Service.GetMine(c.Request.Context(), id)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Hotel brand", brand)
}

func (hc *HotelBrandController) CreateHotelBrand(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	brand, err := hc.Service.Create(c.Request.Context(), id, body(c))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Hotel brand created successfully", brand)
}

func (hc *HotelBrandController) UpdateHotelBrand(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	brand, err := hc.Service.Update(c.Request.Context(), id, c.Param("id"), body(c))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Hotel brand updated", brand)
}

func (hc *HotelBrandController) DeleteHotelBrand(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	if err := hc.Service.Delete(c.Request.Context(), id, c.Param("id")); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Hotel brand deleted", nil)
}
