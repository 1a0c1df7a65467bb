package services

import (
	"context"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/hotel-brand-api/models"
	"github.com/yeremiapane/hotel-brand-api/policy"
	"github.com/yeremiapane/hotel-brand-api/repository"
	"github.com/yeremiapane/hotel-brand-api/utils"
	"github.com/yeremiapane/hotel-brand-api/validation"
)

// CreateOrderRequest has no status: every order starts pending.
type CreateOrderRequest struct {
	TableID string   `json:"table_id" validate:"required"`
	Foods   []string `json:"foods" validate:"required,min=1,dive,required"`
}

type UpdateOrderRequest struct {
	Foods  []string `json:"foods" validate:"omitempty,min=1,dive,required"`
	Status *string  `json:"status"`
}

type OrderService struct {
	store *repository.Store
}

func NewOrderService(store *repository.Store) *OrderService {
	return &OrderService{store: store}
}

// List returns every order in the system with its table and foods expanded.
func (s *OrderService) List(ctx context.Context, id policy.Identity) ([]models.Order, error) {
	if err := policy.Authorize(id, policy.ActionOrderList); err != nil {
		return nil, err
	}
	orders, err := s.store.Orders.Find(ctx, policy.ScopeFilter(id, policy.KindOrder))
	if err != nil {
		return nil, err
	}
	if err := s.populateFoods(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Create prices the order from the stored foods. Every occurrence of a food
// id counts, and the total is never taken from the client.
func (s *OrderService) Create(ctx context.Context, id policy.Identity, decode validation.Decoder) (*models.Order, error) {
	if err := policy.Authorize(id, policy.ActionOrderCreate); err != nil {
		return nil, err
	}
	req, err := validation.Decode[CreateOrderRequest](decode)
	if err != nil {
		return nil, err
	}

	table, err := s.store.Tables.FindByID(ctx, req.TableID)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, utils.NewNotFound("table not found")
	}

	prices, err := s.foodPrices(ctx, req.Foods)
	if err != nil {
		return nil, err
	}
	var total float64
	for _, foodID := range req.Foods {
		total += prices[foodID]
	}

	order := &models.Order{
		TableID:     table.ID,
		FoodIDs:     models.StringList(req.Foods),
		TotalAmount: math.Round(total*100) / 100,
		Status:      models.OrderStatusPending,
	}
	if err := s.store.Orders.Create(ctx, order); err != nil {
		return nil, err
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"order_id":     order.ID,
		"table_id":     order.TableID,
		"total_amount": order.TotalAmount,
	}).Info("order created")
	return s.reload(ctx, order.ID)
}

// Update may change the foods and the status. The total stays as it was
// priced at creation.
func (s *OrderService) Update(ctx context.Context, id policy.Identity, orderID string, decode validation.Decoder) (*models.Order, error) {
	if err := policy.Authorize(id, policy.ActionOrderUpdate); err != nil {
		return nil, err
	}
	current, err := s.store.Orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, utils.NewNotFound("order not found")
	}

	req, err := validation.Decode[UpdateOrderRequest](decode)
	if err != nil {
		return nil, err
	}
	if len(req.Foods) > 0 {
		if _, err := s.foodPrices(ctx, req.Foods); err != nil {
			return nil, err
		}
		current.FoodIDs = models.StringList(req.Foods)
	}
	if req.Status != nil && *req.Status != "" {
		status, err := models.ParseOrderStatus(*req.Status)
		if err != nil {
			return nil, utils.NewValidation("status must be one of [pending completed cancelled]")
		}
		current.Status = status
	}

	if err := s.store.Orders.Save(ctx, current); err != nil {
		return nil, err
	}
	utils.InfoLogger.WithFields(logrus.Fields{
		"order_id": current.ID,
		"status":   current.Status,
	}).Info("order updated")
	return s.reload(ctx, current.ID)
}

func (s *OrderService) Delete(ctx context.Context, id policy.Identity, orderID string) error {
	if err := policy.Authorize(id, policy.ActionOrderDelete); err != nil {
		return err
	}
	deleted, err := s.store.Orders.FindByIDAndDelete(ctx, orderID)
	if err != nil {
		return err
	}
	if deleted == nil {
		return utils.NewNotFound("order not found")
	}
	utils.InfoLogger.WithField("order_id", orderID).Info("order deleted")
	return nil
}

func (s *OrderService) reload(ctx context.Context, orderID string) (*models.Order, error) {
	order, err := s.store.Orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, utils.NewNotFound("order not found")
	}
	orders := []models.Order{*order}
	if err := s.populateFoods(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

// foodPrices loads the current price of every distinct id in ids and fails
// with NotFound if any of them does not exist.
func (s *OrderService) foodPrices(ctx context.Context, ids []string) (map[string]float64, error) {
	distinct := uniqueIDs(ids)
	foods, err := s.store.Foods.Find(ctx, repository.Criteria{"id": distinct})
	if err != nil {
		return nil, err
	}
	prices := make(map[string]float64, len(foods))
	for _, f := range foods {
		prices[f.ID] = f.Price
	}
	for _, foodID := range distinct {
		if _, ok := prices[foodID]; !ok {
			return nil, utils.NewNotFound(fmt.Sprintf("food %s not found", foodID))
		}
	}
	return prices, nil
}

// populateFoods expands FoodIDs into Foods, keeping order and repeats. Ids of
// foods deleted since the order was placed are skipped.
func (s *OrderService) populateFoods(ctx context.Context, orders []models.Order) error {
	var all []string
	for _, o := range orders {
		all = append(all, o.FoodIDs...)
	}
	if len(all) == 0 {
		return nil
	}
	foods, err := s.store.Foods.Find(ctx, repository.Criteria{"id": uniqueIDs(all)})
	if err != nil {
		return err
	}
	byID := make(map[string]models.Food, len(foods))
	for _, f := range foods {
		byID[f.ID] = f
	}
	for i := range orders {
		expanded := make([]models.Food, 0, len(orders[i].FoodIDs))
		for _, foodID := range orders[i].FoodIDs {
			if f, ok := byID[foodID]; ok {
				expanded = append(expanded, f)
			}
		}
		orders[i].Foods = expanded
	}
	return nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
