package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/hotel-brand-api/models"
	"github.com/yeremiapane/hotel-brand-api/repository"
	"github.com/yeremiapane/hotel-brand-api/testutil"
	"github.com/yeremiapane/hotel-brand-api/utils"
	"github.com/yeremiapane/hotel-brand-api/validation"
)

func TestOrderTotalIsFrozen(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()
	brand, admin := env.CreateBrand(t, "A")
	branch, _ := env.CreateBranch(t, brand, "A1")
	table := env.CreateTable(t, branch.ID, "1")
	f1 := env.CreateFood(t, brand.ID, "Soup", 10)
	f2 := env.CreateFood(t, brand.ID, "Steak", 15)

	order, err := env.Services.Orders.Create(ctx, testutil.Identity(admin), validation.Value(map[string]interface{}{
		"table_id":     table.ID,
		"foods":        []string{f1.ID, f2.ID},
		"total_amount": 1,
	}))
	require.NoError(t, err)
	assert.Equal(t, 25.0, order.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	require.NotNil(t, order.Table)
	assert.Equal(t, table.ID, order.Table.ID)
	require.Len(t, order.Foods, 2)

	_, err = env.Store.Foods.FindByIDAndUpdate(ctx, f1.ID, repository.Fields{"price": 99.0})
	require.NoError(t, err)

	stored, err := env.Store.Orders.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 25.0, stored.TotalAmount)

	updated, err := env.Services.Orders.Update(ctx, testutil.Identity(admin), order.ID, validation.Value(map[string]interface{}{
		"foods":  []string{f1.ID},
		"status": "completed",
	}))
	require.NoError(t, err)
	assert.Equal(t, 25.0, updated.TotalAmount, "updates never reprice an order")
	assert.Equal(t, models.OrderStatusCompleted, updated.Status)
	assert.Equal(t, models.StringList{f1.ID}, updated.FoodIDs)
}

func TestOrderTotalCountsRepeats(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()
	brand, _ := env.CreateBrand(t, "A")
	branch, _ := env.CreateBranch(t, brand, "A1")
	table := env.CreateTable(t, branch.ID, "1")
	tea := env.CreateFood(t, brand.ID, "Tea", 2.5)
	manager := env.CreateUser(t, models.RoleManager, &brand.ID, nil)

	order, err := env.Services.Orders.Create(ctx, testutil.Identity(manager), validation.Value(map[string]interface{}{
		"table_id": table.ID,
		"foods":    []string{tea.ID, tea.ID, tea.ID},
	}))
	require.NoError(t, err)
	assert.Equal(t, 7.5, order.TotalAmount)
	assert.Len(t, order.Foods, 3)
}

func TestOrderCreateRejectsUnknownReferences(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()
	brand, admin := env.CreateBrand(t, "A")
	branch, _ := env.CreateBranch(t, brand, "A1")
	table := env.CreateTable(t, branch.ID, "1")
	food := env.CreateFood(t, brand.ID, "Soup", 10)

	_, err := env.Services.Orders.Create(ctx, testutil.Identity(admin), validation.Value(map[string]interface{}{
		"table_id": "missing", "foods": []string{food.ID},
	}))
	assert.True(t, utils.IsKind(err, utils.KindNotFound))

	_, err = env.Services.Orders.Create(ctx, testutil.Identity(admin), validation.Value(map[string]interface{}{
		"table_id": table.ID, "foods": []string{food.ID, "missing"},
	}))
	assert.True(t, utils.IsKind(err, utils.KindNotFound))

	_, err = env.Services.Orders.Create(ctx, testutil.Identity(admin), validation.Value(map[string]interface{}{
		"table_id": table.ID, "foods": []string{},
	}))
	assert.True(t, utils.IsKind(err, utils.KindValidation))

	n, err := env.Store.Orders.Count(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOrderStartsPendingAndStatusIsChecked(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()
	brand, admin := env.CreateBrand(t, "A")
	branch, _ := env.CreateBranch(t, brand, "A1")
	table := env.CreateTable(t, branch.ID, "1")
	food := env.CreateFood(t, brand.ID, "Soup", 10)

	order, err := env.Services.Orders.Create(ctx, testutil.Identity(admin), validation.Value(map[string]interface{}{
		"table_id": table.ID, "foods": []string{food.ID}, "status": "completed",
	}))
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, order.Status, "a new order ignores any status it is sent")

	_, err = env.Services.Orders.Update(ctx, testutil.Identity(admin), order.ID, validation.Value(map[string]interface{}{
		"foods": []string{food.ID, food.ID}, "status": "lost",
	}))
	require.True(t, utils.IsKind(err, utils.KindValidation))
	assert.Equal(t, "status must be one of [pending completed cancelled]", utils.AsAppError(err).Message)

	stored, err := env.Store.Orders.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, stored.Status)
	assert.Equal(t, models.StringList{food.ID}, stored.FoodIDs, "a rejected update writes nothing")

	updated, err := env.Services.Orders.Update(ctx, testutil.Identity(admin), order.ID, validation.Value(map[string]interface{}{
		"status": "cancelled",
	}))
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, updated.Status)
	assert.Equal(t, models.StringList{food.ID}, updated.FoodIDs)
	assert.Equal(t, 10.0, updated.TotalAmount)
	require.NotNil(t, updated.Table)
	assert.Equal(t, table.ID, updated.Table.ID)
}

func TestOrderListIsUnscoped(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()
	brandA, adminA := env.CreateBrand(t, "A")
	brandB, adminB := env.CreateBrand(t, "B")
	branchA, _ := env.CreateBranch(t, brandA, "A1")
	branchB, _ := env.CreateBranch(t, brandB, "B1")
	tableA := env.CreateTable(t, branchA.ID, "1")
	tableB := env.CreateTable(t, branchB.ID, "1")
	foodA := env.CreateFood(t, brandA.ID, "Soup", 4)
	foodB := env.CreateFood(t, brandB.ID, "Steak", 20)

	_, err := env.Services.Orders.Create(ctx, testutil.Identity(adminA), validation.Value(map[string]interface{}{
		"table_id": tableA.ID, "foods": []string{foodA.ID},
	}))
	require.NoError(t, err)
	_, err = env.Services.Orders.Create(ctx, testutil.Identity(adminB), validation.Value(map[string]interface{}{
		"table_id": tableB.ID, "foods": []string{foodB.ID},
	}))
	require.NoError(t, err)

	orders, err := env.Services.Orders.List(ctx, testutil.Identity(adminA))
	require.NoError(t, err)
	assert.Len(t, orders, 2, "order listing is system-wide")
	for _, o := range orders {
		require.NotNil(t, o.Table)
		assert.Len(t, o.Foods, 1)
	}
}

func TestOrderDelete(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()
	brand, admin := env.CreateBrand(t, "A")
	branch, _ := env.CreateBranch(t, brand, "A1")
	table := env.CreateTable(t, branch.ID, "1")
	food := env.CreateFood(t, brand.ID, "Soup", 4)

	order, err := env.Services.Orders.Create(ctx, testutil.Identity(admin), validation.Value(map[string]interface{}{
		"table_id": table.ID, "foods": []string{food.ID},
	}))
	require.NoError(t, err)

	require.NoError(t, env.Services.Orders.Delete(ctx, testutil.Identity(admin), order.ID))
	err = env.Services.Orders.Delete(ctx, testutil.Identity(admin), order.ID)
	assert.True(t, utils.IsKind(err, utils.KindNotFound))
}
