package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/hotel-brand-api/models"
	"github.com/yeremiapane/hotel-brand-api/policy"
	"github.com/yeremiapane/hotel-brand-api/testutil"
	"github.com/yeremiapane/hotel-brand-api/utils"
	"github.com/yeremiapane/hotel-brand-api/validation"
)

// Each operation is called with a decoder that fails the test if it is ever
// read, so a denied call is proven to stop before the payload.
func TestEveryOperationDeniesRolesOutsideItsSet(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()
	s := env.Services

	var decoded bool
	tripwire := validation.Decoder(func(dst interface{}) error {
		decoded = true
		return nil
	})

	ops := map[policy.Action]func(id policy.Identity) error{
		policy.ActionAuthMe: func(id policy.Identity) error { _, err := s.Auth.Me(ctx, id); return err },

		policy.ActionHotelBrandList:   func(id policy.Identity) error { _, err := s.HotelBrands.List(ctx, id); return err },
		policy.ActionHotelBrandGetMy:  func(id policy.Identity) error { _, err := s.HotelBrands.GetMine(ctx, id); return err },
		policy.ActionHotelBrandCreate: func(id policy.Identity) error { _, err := s.HotelBrands.Create(ctx, id, tripwire); return err },
		policy.ActionHotelBrandUpdate: func(id policy.Identity) error { _, err := s.HotelBrands.Update(ctx, id, "x", tripwire); return err },
		policy.ActionHotelBrandDelete: func(id policy.Identity) error { return s.HotelBrands.Delete(ctx, id, "x") },

		policy.ActionBranchList:   func(id policy.Identity) error { _, err := s.Branches.List(ctx, id); return err },
		policy.ActionBranchCreate: func(id policy.Identity) error { _, err := s.Branches.Create(ctx, id, tripwire); return err },
		policy.ActionBranchUpdate: func(id policy.Identity) error { _, err := s.Branches.Update(ctx, id, "x", tripwire); return err },
		policy.ActionBranchDelete: func(id policy.Identity) error { return s.Branches.Delete(ctx, id, "x") },

		policy.ActionTableList:   func(id policy.Identity) error { _, err := s.Tables.List(ctx, id); return err },
		policy.ActionTableCreate: func(id policy.Identity) error { _, err := s.Tables.Create(ctx, id, tripwire); return err },
		policy.ActionTableUpdate: func(id policy.Identity) error { _, err := s.Tables.Update(ctx, id, "x", tripwire); return err },
		policy.ActionTableDelete: func(id policy.Identity) error { return s.Tables.Delete(ctx, id, "x") },

		policy.ActionFoodList:        func(id policy.Identity) error { _, err := s.Foods.List(ctx, id); return err },
		policy.ActionFoodListByBrand: func(id policy.Identity) error { _, err := s.Foods.ListByBrand(ctx, id, "x"); return err },
		policy.ActionFoodCreate:      func(id policy.Identity) error { _, err := s.Foods.Create(ctx, id, tripwire); return err },
		policy.ActionFoodUpdate:      func(id policy.Identity) error { _, err := s.Foods.Update(ctx, id, "x", tripwire); return err },
		policy.ActionFoodDelete:      func(id policy.Identity) error { return s.Foods.Delete(ctx, id, "x") },

		policy.ActionOrderList:   func(id policy.Identity) error { _, err := s.Orders.List(ctx, id); return err },
		policy.ActionOrderCreate: func(id policy.Identity) error { _, err := s.Orders.Create(ctx, id, tripwire); return err },
		policy.ActionOrderUpdate: func(id policy.Identity) error { _, err := s.Orders.Update(ctx, id, "x", tripwire); return err },
		policy.ActionOrderDelete: func(id policy.Identity) error { return s.Orders.Delete(ctx, id, "x") },

		policy.ActionUserList:   func(id policy.Identity) error { _, err := s.Users.List(ctx, id); return err },
		policy.ActionUserCreate: func(id policy.Identity) error { _, err := s.Users.Create(ctx, id, tripwire); return err },
		policy.ActionUserUpdate: func(id policy.Identity) error { _, err := s.Users.Update(ctx, id, "x", tripwire); return err },
		policy.ActionUserDelete: func(id policy.Identity) error { return s.Users.Delete(ctx, id, "x") },
	}
	require.Len(t, ops, len(policy.Actions()))

	for action, call := range ops {
		allowed := policy.AllowedRoles(action)
		for _, role := range models.AllRoles {
			if allowed.Contains(role) {
				continue
			}
			decoded = false
			err := call(policy.Identity{UserID: "caller", Role: role})
			assert.True(t, utils.IsKind(err, utils.KindForbidden), "%s as %s: got %v", action, role, err)
			assert.False(t, decoded, "%s as %s read the payload", action, role)
		}
	}

	users, err := env.Store.Users.Count(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, users, "denied calls must not write")
}

