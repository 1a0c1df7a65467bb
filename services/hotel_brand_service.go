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

type CreateHotelBrandRequest struct {
	Name          string `json:"name" validate:"required"`
	Address       string `json:"address" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	AdminName     string `json:"admin_name" validate:"required"`
	AdminEmail    string `json:"admin_email" validate:"required,email"`
	AdminPassword string `json:"admin_password" validate:"required,min=6,max=72"`
}

type UpdateHotelBrandRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

type HotelBrandService struct {
	store *repository.Store
	creds *CredentialStore
}

func NewHotelBrandService(store *repository.Store, creds *CredentialStore) *HotelBrandService {
	return &HotelBrandService{store: store, creds: creds}
}

func (s *HotelBrandService) List(ctx context.Context, id policy.Identity) ([]models.HotelBrand, error) {
	if err := policy.Authorize(id, policy.ActionHotelBrandList); err != nil {
		return nil, err
	}
	return s.store.HotelBrands.Find(ctx, nil)
}

// GetMine returns the brand administered by the caller. The brand id is never
// taken from the request.
func (s *HotelBrandService) GetMine(ctx context.Context, id policy.Identity) (*models.HotelBrand, error) {
	if err := policy.Authorize(id, policy.ActionHotelBrandGetMy); err != nil {
		return nil, err
	}
	brand, err := s.store.HotelBrands.FindOne(ctx, policy.ScopeFilter(id, policy.KindHotelBrand))
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, utils.NewNotFound("hotel brand not found")
	}
	return brand, nil
}

// Create writes the brand admin, the brand and the admin's back-reference in
// one transaction.
func (s *HotelBrandService) Create(ctx context.Context, id policy.Identity, decode validation.Decoder) (*models.HotelBrand, error) {
	if err := policy.Authorize(id, policy.ActionHotelBrandCreate); err != nil {
		return nil, err
	}
	req, err := validation.Decode[CreateHotelBrandRequest](decode)
	if err != nil {
		return nil, err
	}

	email := NormalizeEmail(req.AdminEmail)
	existing, err := s.store.Users.FindOne(ctx, repository.Criteria{"email": email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.NewConflict("user with this email already exists")
	}

	admin := &models.User{
		Name:        req.AdminName,
		Email:       email,
		Role:        models.RoleAdmin,
		Permissions: models.StringList{},
	}
	if _, err := s.creds.SetPassword(admin, req.AdminPassword); err != nil {
		return nil, err
	}

	var brand *models.HotelBrand
	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := tx.Users.Create(ctx, admin); err != nil {
			return err
		}
		brand = &models.HotelBrand{
			Name:        req.Name,
			Address:     req.Address,
			Phone:       req.Phone,
			AdminUserID: admin.ID,
		}
		if err := tx.HotelBrands.Create(ctx, brand); err != nil {
			return err
		}
		_, err := tx.Users.FindByIDAndUpdate(ctx, admin.ID, repository.Fields{"hotel_brand_id": brand.ID})
		return err
	})
	if err != nil {
		utils.ErrorLogger.WithFields(logrus.Fields{"admin_email": email}).Errorf("hotel brand creation rolled back: %v", err)
		return nil, err
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"hotel_brand_id": brand.ID,
		"admin_user_id":  admin.ID,
	}).Info("hotel brand created")
	return brand, nil
}

func (s *HotelBrandService) Update(ctx context.Context, id policy.Identity, brandID string, decode validation.Decoder) (*models.HotelBrand, error) {
	if err := policy.Authorize(id, policy.ActionHotelBrandUpdate); err != nil {
		return nil, err
	}
	current, err := s.store.HotelBrands.FindByID(ctx, brandID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, utils.NewNotFound("hotel brand not found")
	}

	req, err := validation.Decode[UpdateHotelBrandRequest](decode)
	if err != nil {
		return nil, err
	}
	fields := repository.Fields{}
	mergeString(fields, "name", req.Name)
	mergeString(fields, "address", req.Address)
	mergeString(fields, "phone", req.Phone)

	updated, err := s.store.HotelBrands.FindByIDAndUpdate(ctx, brandID, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, utils.NewNotFound("hotel brand not found")
	}
	return updated, nil
}

// Delete removes only the brand. Its branches, users and foods stay.
func (s *HotelBrandService) Delete(ctx context.Context, id policy.Identity, brandID string) error {
	if err := policy.Authorize(id, policy.ActionHotelBrandDelete); err != nil {
		return err
	}
	deleted, err := s.store.HotelBrands.FindByIDAndDelete(ctx, brandID)
	if err != nil {
		return err
	}
	if deleted == nil {
		return utils.NewNotFound("hotel brand not found")
	}
	utils.InfoLogger.WithField("hotel_brand_id", brandID).Info("hotel brand deleted")
	return nil
}
