package services

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/hotel-brand-api/models"
	"github.com/yeremiapane/hotel-brand-api/policy"
	"github.com/yeremiapane/hotel-brand-api/repository"
	"github.com/yeremiapane/hotel-brand-api/utils"
	"github.com/yeremiapane/hotel-brand-api/validation"
)

type CreateFoodRequest struct {
	Name         string   `json:"name" validate:"required"`
	Price        *float64 `json:"price" validate:"required,gte=0"`
	Type         string   `json:"type" validate:"required"`
	Image        *string  `json:"image"`
	HotelBrandID *string  `json:"hotel_brand_id"`
}

type UpdateFoodRequest struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price" validate:"omitempty,gte=0"`
	Type  *string  `json:"type"`
	Image *string  `json:"image"`
}

type FoodService struct {
	store *repository.Store
}

func NewFoodService(store *repository.Store) *FoodService {
	return &FoodService{store: store}
}

// List returns every food in the system regardless of the caller's brand.
func (s *FoodService) List(ctx context.Context, id policy.Identity) ([]models.Food, error) {
	if err := policy.Authorize(id, policy.ActionFoodList); err != nil {
		return nil, err
	}
	return s.store.Foods.Find(ctx, policy.ScopeFilter(id, policy.KindFood))
}

// ListByBrand returns the menu of one brand.
func (s *FoodService) ListByBrand(ctx context.Context, id policy.Identity, hotelBrandID string) ([]models.Food, error) {
	if err := policy.Authorize(id, policy.ActionFoodListByBrand); err != nil {
		return nil, err
	}
	return s.store.Foods.Find(ctx, repository.Criteria{"hotel_brand_id": hotelBrandID})
}

// Create attaches the food to the brand named in the payload, or to the
// caller's brand when none is given.
func (s *FoodService) Create(ctx context.Context, id policy.Identity, decode validation.Decoder) (*models.Food, error) {
	if err := policy.Authorize(id, policy.ActionFoodCreate); err != nil {
		return nil, err
	}
	req, err := validation.Decode[CreateFoodRequest](decode)
	if err != nil {
		return nil, err
	}

	brandID := optional(req.HotelBrandID)
	if brandID == nil {
		brandID = optional(id.HotelBrandID)
	}
	if brandID == nil {
		return nil, utils.NewValidation("hotel_brand_id is required")
	}
	brand, err := s.store.HotelBrands.FindByID(ctx, *brandID)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, utils.NewNotFound("hotel brand not found")
	}

	food := &models.Food{
		Name:         req.Name,
		Price:        *req.Price,
		Type:         req.Type,
		Image:        optional(req.Image),
		HotelBrandID: *brandID,
	}
	if err := s.store.Foods.Create(ctx, food); err != nil {
		return nil, err
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"food_id":        food.ID,
		"hotel_brand_id": food.HotelBrandID,
	}).Info("food created")
	return food, nil
}

func (s *FoodService) Update(ctx context.Context, id policy.Identity, foodID string, decode validation.Decoder) (*models.Food, error) {
	if err := policy.Authorize(id, policy.ActionFoodUpdate); err != nil {
		return nil, err
	}
	current, err := s.store.Foods.FindByID(ctx, foodID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, utils.NewNotFound("food not found")
	}

	req, err := validation.Decode[UpdateFoodRequest](decode)
	if err != nil {
		return nil, err
	}
	fields := repository.Fields{}
	mergeString(fields, "name", req.Name)
	mergeFloat(fields, "price", req.Price)
	mergeString(fields, "type", req.Type)
	mergeString(fields, "image", req.Image)

	updated, err := s.store.Foods.FindByIDAndUpdate(ctx, foodID, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, utils.NewNotFound("food not found")
	}
	return updated, nil
}

func (s *FoodService) Delete(ctx context.Context, id policy.Identity, foodID string) error {
	if err := policy.Authorize(id, policy.ActionFoodDelete); err != nil {
		return err
	}
	deleted, err := s.store.Foods.FindByIDAndDelete(ctx, foodID)
	if err != nil {
		return err
	}
	if deleted == nil {
		return utils.NewNotFound("food not found")
	}
	utils.InfoLogger.WithField("food_id", foodID).Info("food deleted")
	return nil
}
