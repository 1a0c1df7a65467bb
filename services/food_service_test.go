package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/hotel-brand-api/models"
	"github.com/yeremiapane/hotel-brand-api/testutil"
	"github.com/yeremiapane/hotel-brand-api/utils"
	"github.com/yeremiapane/hotel-brand-api/validation"
)

func TestFoodCreateDefaultsToCallerBrand(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()
	brand, admin := env.CreateBrand(t, "A")

	food, err := env.Services.Foods.Create(ctx, testutil.Identity(admin), validation.Value(map[string]interface{}{
		"name":  "Nasi Goreng",
		"price": 0,
		"type":  "main",
	}))
	require.NoError(t, err)
	assert.Equal(t, brand.ID, food.HotelBrandID)
	assert.Zero(t, food.Price)
	assert.Nil(t, food.Image)
}

func TestFoodCreateChecksBrand(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()
	root := env.CreateUser(t, models.RoleSuperAdmin, nil, nil)

	_, err := env.Services.Foods.Create(ctx, testutil.Identity(root), validation.Value(map[string]interface{}{
		"name": "Soup", "price": 3, "type": "starter",
	}))
	assert.True(t, utils.IsKind(err, utils.KindValidation))

	_, err = env.Services.Foods.Create(ctx, testutil.Identity(root), validation.Value(map[string]interface{}{
		"name": "Soup", "price": 3, "type": "starter", "hotel_brand_id": "missing",
	}))
	assert.True(t, utils.IsKind(err, utils.KindNotFound))

	_, err = env.Services.Foods.Create(ctx, testutil.Identity(root), validation.Value(map[string]interface{}{
		"name": "Soup", "price": -1, "type": "starter",
	}))
	require.True(t, utils.IsKind(err, utils.KindValidation))
	assert.Contains(t, utils.AsAppError(err).Message, "price must be greater than or equal to 0")
}

func TestFoodListIsUnscoped(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()
	brandA, _ := env.CreateBrand(t, "A")
	brandB, _ := env.CreateBrand(t, "B")
	env.CreateFood(t, brandA.ID, "Soup", 5)
	env.CreateFood(t, brandB.ID, "Steak", 30)
	manager := env.CreateUser(t, models.RoleManager, &brandA.ID, nil)

	all, err := env.Services.Foods.List(ctx, testutil.Identity(manager))
	require.NoError(t, err)
	assert.Len(t, all, 2, "food listing is system-wide")

	menu, err := env.Services.Foods.ListByBrand(ctx, testutil.Identity(manager), brandB.ID)
	require.NoError(t, err)
	require.Len(t, menu, 1)
	assert.Equal(t, "Steak", menu[0].Name)
}

func TestFoodUpdateAndDelete(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()
	brand, admin := env.CreateBrand(t, "A")
	food := env.CreateFood(t, brand.ID, "Soup", 5)

	updated, err := env.Services.Foods.Update(ctx, testutil.Identity(admin), food.ID, validation.Value(map[string]interface{}{
		"price": 7.5,
		"name":  "",
	}))
	require.NoError(t, err)
	assert.Equal(t, 7.5, updated.Price)
	assert.Equal(t, "Soup", updated.Name)

	require.NoError(t, env.Services.Foods.Delete(ctx, testutil.Identity(admin), food.ID))
	err = env.Services.Foods.Delete(ctx, testutil.Identity(admin), food.ID)
	assert.True(t, utils.IsKind(err, utils.KindNotFound))
}
