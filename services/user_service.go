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

type CreateUserRequest struct {
	Name         string   `json:"name" validate:"required"`
	Email        string   `json:"email" validate:"required,email"`
	Password     string   `json:"password" validate:"required,min=6,max=72"`
	Role         string   `json:"role" validate:"required,oneof=super-admin admin sub-admin manager adminManager"`
	HotelBrandID *string  `json:"hotel_brand_id"`
	BranchID     *string  `json:"branch_id"`
	Permissions  []string `json:"permissions" validate:"omitempty,dive,required"`
}

type UpdateUserRequest struct {
	Name         *string  `json:"name"`
	Email        *string  `json:"email" validate:"omitempty,email"`
	Password     *string  `json:"password" validate:"omitempty,min=6,max=72"`
	Role         *string  `json:"role" validate:"omitempty,oneof=super-admin admin sub-admin manager adminManager"`
	HotelBrandID *string  `json:"hotel_brand_id"`
	BranchID     *string  `json:"branch_id"`
	Permissions  []string `json:"permissions" validate:"omitempty,dive,required"`
}

type UserService struct {
	store *repository.Store
	creds *CredentialStore
}

func NewUserService(store *repository.Store, creds *CredentialStore) *UserService {
	return &UserService{store: store, creds: creds}
}

// List returns every user in the system regardless of the caller's brand.
func (s *UserService) List(ctx context.Context, id policy.Identity) ([]models.User, error) {
	if err := policy.Authorize(id, policy.ActionUserList); err != nil {
		return nil, err
	}
	return s.store.Users.Find(ctx, policy.ScopeFilter(id, policy.KindUser))
}

func (s *UserService) Create(ctx context.Context, id policy.Identity, decode validation.Decoder) (*models.User, error) {
	if err := policy.Authorize(id, policy.ActionUserCreate); err != nil {
		return nil, err
	}
	req, err := validation.Decode[CreateUserRequest](decode)
	if err != nil {
		return nil, err
	}

	email := NormalizeEmail(req.Email)
	if err := s.ensureEmailFree(ctx, email, ""); err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        email,
		Role:         models.Role(req.Role),
		HotelBrandID: optional(req.HotelBrandID),
		BranchID:     optional(req.BranchID),
		Permissions:  models.StringList(req.Permissions),
	}
	if user.Permissions == nil {
		user.Permissions = models.StringList{}
	}
	if _, err := s.creds.SetPassword(user, req.Password); err != nil {
		return nil, err
	}
	if err := s.store.Users.Create(ctx, user); err != nil {
		return nil, err
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"user_id":    user.ID,
		"role":       user.Role,
		"created_by": id.UserID,
	}).Info("user created")
	return user, nil
}

// Update coalesces the payload onto the stored user. The password hash only
// changes when a different password is supplied.
func (s *UserService) Update(ctx context.Context, id policy.Identity, userID string, decode validation.Decoder) (*models.User, error) {
	if err := policy.Authorize(id, policy.ActionUserUpdate); err != nil {
		return nil, err
	}
	current, err := s.store.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, utils.NewNotFound("user not found")
	}

	req, err := validation.Decode[UpdateUserRequest](decode)
	if err != nil {
		return nil, err
	}

	fields := repository.Fields{}
	mergeString(fields, "name", req.Name)
	if req.Email != nil && *req.Email != "" {
		email := NormalizeEmail(*req.Email)
		if email != current.Email {
			if err := s.ensureEmailFree(ctx, email, current.ID); err != nil {
				return nil, err
			}
			fields["email"] = email
		}
	}
	if req.Role != nil && *req.Role != "" {
		fields["role"] = models.Role(*req.Role)
	}
	mergeString(fields, "hotel_brand_id", req.HotelBrandID)
	mergeString(fields, "branch_id", req.BranchID)
	mergeList(fields, "permissions", req.Permissions)

	if req.Password != nil {
		changed, err := s.creds.SetPassword(current, *req.Password)
		if err != nil {
			return nil, err
		}
		if changed {
			fields["password"] = current.Password
		}
	}

	updated, err := s.store.Users.FindByIDAndUpdate(ctx, userID, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, utils.NewNotFound("user not found")
	}
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id policy.Identity, userID string) error {
	if err := policy.Authorize(id, policy.ActionUserDelete); err != nil {
		return err
	}
	deleted, err := s.store.Users.FindByIDAndDelete(ctx, userID)
	if err != nil {
		return err
	}
	if deleted == nil {
		return utils.NewNotFound("user not found")
	}
	utils.InfoLogger.WithFields(logrus.Fields{
		"user_id":    userID,
		"deleted_by": id.UserID,
	}).Info("user deleted")
	return nil
}

func (s *UserService) ensureEmailFree(ctx context.Context, email, exceptID string) error {
	existing, err := s.store.Users.FindOne(ctx, repository.Criteria{"email": email})
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != exceptID {
		return utils.NewConflict("user with this email already exists")
	}
	return nil
}
