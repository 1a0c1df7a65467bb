package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/hotel-brand-api/services"
	"github.com/yeremiapane/hotel-brand-api/utils"
)

type TableController struct {
	Service *services.TableService
}

func NewTableController(svc *services.TableService) *TableController {
	return &TableController{Service: svc}
}

// GetAllTables -> tables of the caller's branch
func (tc *TableController) GetAllTables(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	tables, err := tc.Service.List(c.Request.Context(), id)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

func (tc *TableController) CreateTable(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	table, err := tc.Service.Create(c.Request.Context(), id, body(c))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

func (tc *TableController) UpdateTable(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	table, err := tc.Service.Update(c.Request.Context(), id, c.Param("id"), body(c))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

func (tc *TableController) DeleteTable(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	if err := tc.Service.Delete(c.Request.Context(), id, c.Param("id")); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table deleted successfully", nil)
}
