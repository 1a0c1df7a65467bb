// Package database prepares the schema and the bootstrap account.
package database

import (
	"context"
	"fmt"

	"github.com/yeremiapane/hotel-brand-api/config"
	"github.com/yeremiapane/hotel-brand-api/models"
	"github.com/yeremiapane/hotel-brand-api/repository"
	"github.com/yeremiapane/hotel-brand-api/services"
	"github.com/yeremiapane/hotel-brand-api/utils"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(repository.Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	utils.InfoLogger.Printf("Migrated %d tables", len(repository.Models()))
	return nil
}

// SeedSuperAdmin creates the configured super-admin when no super-admin
// exists yet. It is a no-op without SUPER_ADMIN_EMAIL.
func SeedSuperAdmin(ctx context.Context, store *repository.Store, creds *services.CredentialStore, cfg config.SuperAdminConfig) error {
	if cfg.Email == "" {
		return nil
	}
	n, err := store.Users.Count(ctx, repository.Criteria{"role": models.RoleSuperAdmin})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	user := &models.User{
		Name:        cfg.Name,
		Email:       services.NormalizeEmail(cfg.Email),
		Role:        models.RoleSuperAdmin,
		Permissions: models.StringList{},
	}
	if _, err := creds.SetPassword(user, cfg.Password); err != nil {
		return err
	}
	if err := store.Users.Create(ctx, user); err != nil {
		return err
	}
	utils.InfoLogger.WithField("user_id", user.ID).Info("super-admin seeded")
	return nil
}
