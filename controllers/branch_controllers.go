package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/hotel-brand-api/services"
	"github.com/yeremiapane/hotel-brand-api/utils"
)

type BranchController struct {
	Service *services.BranchService
}

func NewBranchController(svc *services.BranchService) *BranchController {
	return &BranchController{Service: svc}
}

func (bc *BranchController) GetBranches(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	branches, err := bc.Service.List(c.Request.Context(), id)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of branches", branches)
}

func (bc *BranchController) CreateBranch(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	branch, err := bc.Service.Create(c.Request.Context(), id, body(c))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Branch created successfully", branch)
}

func (bc *BranchController) UpdateBranch(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	branch, err := bc.Service.Update(c.Request.Context(), id, c.Param("id"), body(c))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Branch updated", branch)
}

func (bc *BranchController) DeleteBranch(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	if err := bc.Service.Delete(c.Request.Context(), id, c.Param("id")); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Branch deleted", nil)
}
