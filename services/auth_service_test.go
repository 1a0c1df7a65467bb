package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/hotel-brand-api/models"
	"github.com/yeremiapane/hotel-brand-api/testutil"
	"github.com/yeremiapane/hotel-brand-api/utils"
	"github.com/yeremiapane/hotel-brand-api/validation"
)

func TestLogin(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()
	user := env.CreateUser(t, models.RoleManager, nil, nil)

	res, err := env.Services.Auth.Login(ctx, validation.Value(map[string]string{
		"email":    strings.ToUpper(user.Email),
		"password": "secret123",
	}))
	require.NoError(t, err)
	assert.Equal(t, user.ID, res.User.ID)

	id, err := env.Services.Auth.Authenticate(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, id.UserID)
	assert.Equal(t, models.RoleManager, id.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()
	user := env.CreateUser(t, models.RoleAdmin, nil, nil)

	_, err := env.Services.Auth.Login(ctx, validation.Value(map[string]string{"email": user.Email, "password": "wrong-pass"}))
	assert.True(t, utils.IsKind(err, utils.KindUnauthenticated))

	_, err = env.Services.Auth.Login(ctx, validation.Value(map[string]string{"email": "nobody@example.com", "password": "secret123"}))
	assert.True(t, utils.IsKind(err, utils.KindUnauthenticated))

	_, err = env.Services.Auth.Login(ctx, validation.Value(map[string]string{"email": "not-an-email"}))
	assert.True(t, utils.IsKind(err, utils.KindValidation))
}

func TestAuthenticate(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()
	user := env.CreateUser(t, models.RoleManager, nil, nil)
	token := env.Token(t, user)

	t.Run("missing token", func(t *testing.T) {
		_, err := env.Services.Auth.Authenticate(ctx, "")
		assert.True(t, utils.IsKind(err, utils.KindUnauthenticated))
	})

	t.Run("tampered token", func(t *testing.T) {
		_, err := env.Services.Auth.Authenticate(ctx, token+"x")
		assert.True(t, utils.IsKind(err, utils.KindUnauthenticated))
	})

	t.Run("foreign secret", func(t *testing.T) {
		other := utils.NewJWTManager("another-secret-that-is-long-enough!!", time.Hour)
		forged, err := other.GenerateToken(user.ID, "super-admin")
		require.NoError(t, err)
		_, err = env.Services.Auth.Authenticate(ctx, forged)
		assert.True(t, utils.IsKind(err, utils.KindUnauthenticated))
	})

	t.Run("deleted user", func(t *testing.T) {
		_, err := env.Store.Users.FindByIDAndDelete(ctx, user.ID)
		require.NoError(t, err)
		_, err = env.Services.Auth.Authenticate(ctx, token)
		assert.True(t, utils.IsKind(err, utils.KindUnauthenticated))
	})
}

func TestAuthenticateUsesStoredRole(t *testing.T) {
	env := testutil.NewEnv(t)
	ctx := context.Background()
	user := env.CreateUser(t, models.RoleManager, nil, nil)
	token, err := env.JWT.GenerateToken(user.ID, "super-admin")
	require.NoError(t, err)

	id, err := env.Services.Auth.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleManager, id.Role, "the role claim must not override the stored role")
}

func TestMe(t *testing.T) {
	env := testutil.NewEnv(t)
	user := env.CreateUser(t, models.RoleAdminManager, nil, nil)

	me, err := env.Services.Auth.Me(context.Background(), testutil.Identity(user))
	require.NoError(t, err)
	assert.Equal(t, user.Email, me.Email)
}
