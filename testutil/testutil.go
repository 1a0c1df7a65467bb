// Package testutil builds throwaway SQLite stores and seed data for tests.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/hotel-brand-api/config"
	"github.com/yeremiapane/hotel-brand-api/database"
	"github.com/yeremiapane/hotel-brand-api/models"
	"github.com/yeremiapane/hotel-brand-api/policy"
	"github.com/yeremiapane/hotel-brand-api/repository"
	"github.com/yeremiapane/hotel-brand-api/services"
	"github.com/yeremiapane/hotel-brand-api/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const TestSecret = "test-secret-key-that-is-long-enough"

// NewDB opens a private in-memory database with the full schema.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	utils.SilenceLoggers()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(uuid.NewString(), "-", ""))
	db, err := gorm.Open(sqlite.Open(dsn), config.GormConfig())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// Env bundles everything a service or handler test needs.
type Env struct {
	DB       *gorm.DB
	Store    *repository.Store
	Creds    *services.CredentialStore
	JWT      *utils.JWTManager
	Services *services.Services
}

func NewEnv(t *testing.T) *Env {
	t.Helper()
	db := NewDB(t)
	store := repository.NewStore(db)
	// Minimum cost keeps hashing fast in tests.
	creds := services.NewCredentialStore(4)
	jwt := utils.NewJWTManager(TestSecret, config.DefaultJWTTTL)
	return &Env{
		DB:       db,
		Store:    store,
		Creds:    creds,
		JWT:      jwt,
		Services: services.New(store, creds, jwt),
	}
}

// CreateUser stores a user with the given role and password "secret123".
func (e *Env) CreateUser(t *testing.T, role models.Role, brandID, branchID *string) *models.User {
	t.Helper()
	u := &models.User{
		Name:         string(role) + " user",
		Email:        fmt.Sprintf("%s-%s@example.com", role, uuid.NewString()[:8]),
		Role:         role,
		HotelBrandID: brandID,
		BranchID:     branchID,
		Permissions:  models.StringList{},
	}
	u.Email = strings.ToLower(u.Email)
	_, err := e.Creds.SetPassword(u, "secret123")
	require.NoError(t, err)
	require.NoError(t, e.Store.Users.Create(context.Background(), u))
	return u
}

// CreateBrand stores a brand with its admin linked both ways.
func (e *Env) CreateBrand(t *testing.T, name string) (*models.HotelBrand, *models.User) {
	t.Helper()
	ctx := context.Background()
	admin := e.CreateUser(t, models.RoleAdmin, nil, nil)
	brand := &models.HotelBrand{Name: name, Address: name + " street", Phone: "555", AdminUserID: admin.ID}
	require.NoError(t, e.Store.HotelBrands.Create(ctx, brand))
	admin, err := e.Store.Users.FindByIDAndUpdate(ctx, admin.ID, repository.Fields{"hotel_brand_id": brand.ID})
	require.NoError(t, err)
	return brand, admin
}

// CreateBranch stores a branch under brand with a sub-admin linked both ways.
func (e *Env) CreateBranch(t *testing.T, brand *models.HotelBrand, name string) (*models.Branch, *models.User) {
	t.Helper()
	ctx := context.Background()
	brandID := brand.ID
	subAdmin := e.CreateUser(t, models.RoleSubAdmin, &brandID, nil)
	branch := &models.Branch{Name: name, Address: name + " road", Phone: "777", AdminUserID: subAdmin.ID, HotelBrandID: &brandID}
	require.NoError(t, e.Store.Branches.Create(ctx, branch))
	subAdmin, err := e.Store.Users.FindByIDAndUpdate(ctx, subAdmin.ID, repository.Fields{"branch_id": branch.ID})
	require.NoError(t, err)
	return branch, subAdmin
}

func (e *Env) CreateTable(t *testing.T, branchID, number string) *models.Table {
	t.Helper()
	table := &models.Table{Number: number, Capacity: 4, BranchID: branchID}
	require.NoError(t, e.Store.Tables.Create(context.Background(), table))
	return table
}

func (e *Env) CreateFood(t *testing.T, brandID, name string, price float64) *models.Food {
	t.Helper()
	food := &models.Food{Name: name, Price: price, Type: "main", HotelBrandID: brandID}
	require.NoError(t, e.Store.Foods.Create(context.Background(), food))
	return food
}

// Token signs a bearer token for u.
func (e *Env) Token(t *testing.T, u *models.User) string {
	t.Helper()
	token, err := e.JWT.GenerateToken(u.ID, u.Role.String())
	require.NoError(t, err)
	return token
}

func Identity(u *models.User) policy.Identity {
	return policy.IdentityFromUser(u)
}
