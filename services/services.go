// Package services holds one service per resource. Every method authorizes
// the caller first, then resolves scope, then decodes and validates the
// payload, and only then touches the store.
package services

import (
	"github.com/yeremiapane/hotel-brand-api/repository"
	"github.com/yeremiapane/hotel-brand-api/utils"
)

type Services struct {
	Credentials *CredentialStore
	Auth        *AuthService
	HotelBrands *HotelBrandService
	Branches    *BranchService
	Tables      *TableService
	Foods       *FoodService
	Orders      *OrderService
	Users       *UserService
}

func New(store *repository.Store, creds *CredentialStore, jwt *utils.JWTManager) *Services {
	return &Services{
		Credentials: creds,
		Auth:        NewAuthService(store, creds, jwt),
		HotelBrands: NewHotelBrandService(store, creds),
		Branches:    NewBranchService(store, creds),
		Tables:      NewTableService(store),
		Foods:       NewFoodService(store),
		Orders:      NewOrderService(store),
		Users:       NewUserService(store, creds),
	}
}
