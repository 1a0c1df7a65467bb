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

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// AuthService issues tokens and resolves them back to a caller identity.
type AuthService struct {
	store *repository.Store
	creds *CredentialStore
	jwt   *utils.JWTManager
}

func NewAuthService(store *repository.Store, creds *CredentialStore, jwt *utils.JWTManager) *AuthService {
	return &AuthService{store: store, creds: creds, jwt: jwt}
}

// Login checks an email and password pair and signs a token for the user.
// Unknown emails and wrong passwords fail the same way.
func (s *AuthService) Login(ctx context.Context, decode validation.Decoder) (*LoginResult, error) {
	req, err := validation.Decode[LoginRequest](decode)
	if err != nil {
		return nil, err
	}

	user, err := s.store.Users.FindOne(ctx, repository.Criteria{"email": NormalizeEmail(req.Email)})
	if err != nil {
		return nil, err
	}
	if user == nil || !s.creds.Verify(req.Password, user.Password) {
		return nil, utils.NewUnauthenticated("invalid email or password")
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Role.String())
	if err != nil {
		return nil, utils.NewInternal("failed to issue token", err)
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("user logged in")
	return &LoginResult{Token: token, User: user}, nil
}

// Authenticate verifies token and reloads the user it names. A token for a
// user that no longer exists is rejected.
func (s *AuthService) Authenticate(ctx context.Context, token string) (policy.Identity, error) {
	if token == "" {
		return policy.Identity{}, utils.NewUnauthenticated("missing bearer token")
	}
	claims, err := s.jwt.ParseToken(token)
	if err != nil {
		return policy.Identity{}, utils.NewUnauthenticated("invalid or expired token")
	}

	user, err := s.store.Users.FindByID(ctx, claims.UserID)
	if err != nil {
		return policy.Identity{}, err
	}
	if user == nil {
		return policy.Identity{}, utils.NewUnauthenticated("user no longer exists")
	}
	return policy.IdentityFromUser(user), nil
}

// Me returns the caller's own user record.
func (s *AuthService) Me(ctx context.Context, id policy.Identity) (*models.User, error) {
	if err := policy.Authorize(id, policy.ActionAuthMe); err != nil {
		return nil, err
	}
	user, err := s.store.Users.FindByID(ctx, id.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.NewUnauthenticated("user no longer exists")
	}
	return user, nil
}
