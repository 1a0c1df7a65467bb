package repository

import (
	"context"

	"github.com/yeremiapane/hotel-brand-api/models"
	"gorm.io/gorm"
)

// Store groups the entity repositories over one connection (or transaction).
type Store struct {
	db *gorm.DB

	Users       *Repository[models.User]
	HotelBrands *Repository[models.HotelBrand]
	Branches    *Repository[models.Branch]
	Tables      *Repository[models.Table]
	Foods       *Repository[models.Food]
	Orders      *Repository[models.Order]
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:          db,
		Users:       New[models.User](db),
		HotelBrands: New[models.HotelBrand](db),
		Branches:    New[models.Branch](db, "AdminUser"),
		Tables:      New[models.Table](db),
		Foods:       New[models.Food](db),
		Orders:      New[models.Order](db, "Table"),
	}
}

// Transaction runs fn against a Store bound to a single database transaction.
// Any error returned by fn rolls back every write made through it.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

// Models lists every persisted entity, in migration order.
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.HotelBrand{},
		&models.Branch{},
		&models.Table{},
		&models.Food{},
		&models.Order{},
	}
}
