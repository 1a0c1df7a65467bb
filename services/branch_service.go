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

type CreateBranchRequest struct {
	Name                string `json:"name" validate:"required"`
	Address             string `json:"address" validate:"required"`
	Phone               string `json:"phone" validate:"required"`
	BranchAdminName     string `json:"branch_admin_name" validate:"required"`
	BranchAdminEmail    string `json:"branch_admin_email" validate:"required,email"`
	BranchAdminPassword string `json:"branch_admin_password" validate:"required,min=6,max=72"`
	// HotelBrandID is only read for a super-admin; everyone else creates
	// branches under their own brand.
	HotelBrandID *string `json:"hotel_brand_id"`
}

type UpdateBranchRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

type BranchService struct {
	store *repository.Store
	creds *CredentialStore
}

func NewBranchService(store *repository.Store, creds *CredentialStore) *BranchService {
	return &BranchService{store: store, creds: creds}
}

// List returns the caller's own branch for a sub-admin and every branch of
// the caller's brand otherwise.
func (s *BranchService) List(ctx context.Context, id policy.Identity) ([]models.Branch, error) {
	if err := policy.Authorize(id, policy.ActionBranchList); err != nil {
		return nil, err
	}
	return s.store.Branches.Find(ctx, policy.ScopeFilter(id, policy.KindBranch))
}

// Create adds a branch together with its sub-admin. The branch goes under the
// caller's brand, or under the brand named in the payload for a super-admin.
func (s *BranchService) Create(ctx context.Context, id policy.Identity, decode validation.Decoder) (*models.Branch, error) {
	if err := policy.Authorize(id, policy.ActionBranchCreate); err != nil {
		return nil, err
	}
	superAdmin := id.Role == models.RoleSuperAdmin
	if !superAdmin {
		if err := s.ensureBrand(ctx, id.HotelBrandID); err != nil {
			return nil, err
		}
	}

	req, err := validation.Decode[CreateBranchRequest](decode)
	if err != nil {
		return nil, err
	}

	var brandID string
	if superAdmin {
		if req.HotelBrandID == nil || *req.HotelBrandID == "" {
			return nil, utils.NewValidation("hotel_brand_id is required")
		}
		if err := s.ensureBrand(ctx, req.HotelBrandID); err != nil {
			return nil, err
		}
		brandID = *req.HotelBrandID
	} else {
		brandID = *id.HotelBrandID
	}

	email := NormalizeEmail(req.BranchAdminEmail)
	existing, err := s.store.Users.FindOne(ctx, repository.Criteria{"email": email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.NewConflict("user with this email already exists")
	}

	admin := &models.User{
		Name:         req.BranchAdminName,
		Email:        email,
		Role:         models.RoleSubAdmin,
		HotelBrandID: &brandID,
		Permissions:  models.StringList{},
	}
	if _, err := s.creds.SetPassword(admin, req.BranchAdminPassword); err != nil {
		return nil, err
	}

	var created *models.Branch
	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		if err := tx.Users.Create(ctx, admin); err != nil {
			return err
		}
		branch := &models.Branch{
			Name:         req.Name,
			Address:      req.Address,
			Phone:        req.Phone,
			AdminUserID:  admin.ID,
			HotelBrandID: &brandID,
		}
		if err := tx.Branches.Create(ctx, branch); err != nil {
			return err
		}
		if _, err := tx.Users.FindByIDAndUpdate(ctx, admin.ID, repository.Fields{"branch_id": branch.ID}); err != nil {
			return err
		}
		var err error
		created, err = tx.Branches.FindByID(ctx, branch.ID)
		return err
	})
	if err != nil {
		utils.ErrorLogger.WithFields(logrus.Fields{
			"hotel_brand_id": brandID,
			"admin_email":    email,
		}).Errorf("branch creation rolled back: %v", err)
		return nil, err
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"branch_id":      created.ID,
		"hotel_brand_id": brandID,
	}).Info("branch created")
	return created, nil
}

func (s *BranchService) Update(ctx context.Context, id policy.Identity, branchID string, decode validation.Decoder) (*models.Branch, error) {
	if err := policy.Authorize(id, policy.ActionBranchUpdate); err != nil {
		return nil, err
	}
	scope := policy.Scoped(id, policy.KindBranch, branchID)
	current, err := s.store.Branches.FindOne(ctx, scope)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, utils.NewNotFound("branch not found")
	}

	req, err := validation.Decode[UpdateBranchRequest](decode)
	if err != nil {
		return nil, err
	}
	fields := repository.Fields{}
	mergeString(fields, "name", req.Name)
	mergeString(fields, "address", req.Address)
	mergeString(fields, "phone", req.Phone)

	updated, err := s.store.Branches.FindOneAndUpdate(ctx, scope, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, utils.NewNotFound("branch not found")
	}
	return updated, nil
}

// Delete removes the branch only; its tables are left in place.
func (s *BranchService) Delete(ctx context.Context, id policy.Identity, branchID string) error {
	if err := policy.Authorize(id, policy.ActionBranchDelete); err != nil {
		return err
	}
	deleted, err := s.store.Branches.FindOneAndDelete(ctx, policy.Scoped(id, policy.KindBranch, branchID))
	if err != nil {
		return err
	}
	if deleted == nil {
		return utils.NewNotFound("branch not found")
	}
	utils.InfoLogger.WithField("branch_id", branchID).Info("branch deleted")
	return nil
}

func (s *BranchService) ensureBrand(ctx context.Context, brandID *string) error {
	if brandID == nil || *brandID == "" {
		return utils.NewNotFound("hotel brand not found")
	}
	brand, err := s.store.HotelBrands.FindByID(ctx, *brandID)
	if err != nil {
		return err
	}
	if brand == nil {
		return utils.NewNotFound("hotel brand not found")
	}
	return nil
}
