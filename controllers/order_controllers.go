package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/hotel-brand-api/services"
	"github.com/yeremiapane/hotel-brand-api/utils"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Service: svc}
}

// GetAllOrders -> list orders with table and foods
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	orders, err := oc.Service.List(c.Request.Context(), id)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// CreateOrder -> total is priced from the stored foods
func (oc *OrderController) CreateOrder(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	order, err := oc.Service.Create(c.Request.Context(), id, body(c))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Order created successfully", order)
}

func (oc *OrderController) UpdateOrder(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	order, err := oc.Service.Update(c.Request.Context(), id, c.Param("id"), body(c))
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order updated", order)
}

func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, ok := caller(c)
	if !ok {
		return
	}
	if err := oc.Service.Delete(c.Request.Context(), id, c.Param("id")); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order deleted successfully", nil)
}
