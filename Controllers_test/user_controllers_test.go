package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/hotel-brand-api/controllers"
	"github.com/yeremiapane/hotel-brand-api/models"
	"github.com/yeremiapane/hotel-brand-api/policy"
	"github.com/yeremiapane/hotel-brand-api/testutil"
)

func TestCreateUserHidesPassword(t *testing.T) {
	env := testutil.NewEnv(t)
	_, admin := env.CreateBrand(t, "A")

	ctrl := controllers.NewUserController(env.Services.Users)
	router := newRouter(env, http.MethodPost, "/users", policy.ActionUserCreate, ctrl.CreateUser)

	w, resp := doRequest(t, router, http.MethodPost, "/users", env.Token(t, admin), map[string]interface{}{
		"name":     "Mia",
		"email":    "mia@example.com",
		"password": "secret123",
		"role":     "manager",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var data map[string]interface{}
	decodeData(t, resp, &data)
	assert.Equal(t, "mia@example.com", data["email"])
	assert.NotContains(t, data, "password")

	w, resp = doRequest(t, router, http.MethodPost, "/users", env.Token(t, admin), map[string]interface{}{
		"name":     "Mia",
		"email":    "MIA@example.com",
		"password": "secret123",
		"role":     "manager",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "conflict", resp.Error)
}

func TestUserRoutesRequireToken(t *testing.T) {
	env := testutil.NewEnv(t)

	ctrl := controllers.NewUserController(env.Services.Users)
	router := newRouter(env, http.MethodGet, "/users", policy.ActionUserList, ctrl.GetAllUsers)

	w, resp := doRequest(t, router, http.MethodGet, "/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "unauthenticated", resp.Error)

	w, resp = doRequest(t, router, http.MethodGet, "/users", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "unauthenticated", resp.Error)
}

func TestGetAllUsersForbiddenForManager(t *testing.T) {
	env := testutil.NewEnv(t)
	manager := env.CreateUser(t, models.RoleManager, nil, nil)

	ctrl := controllers.NewUserController(env.Services.Users)
	router := newRouter(env, http.MethodGet, "/users", policy.ActionUserList, ctrl.GetAllUsers)

	w, _ := doRequest(t, router, http.MethodGet, "/users", env.Token(t, manager), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeletedUserTokenRejected(t *testing.T) {
	env := testutil.NewEnv(t)
	_, admin := env.CreateBrand(t, "A")
	token := env.Token(t, admin)

	ctrl := controllers.NewUserController(env.Services.Users)
	router := newRouter(env, http.MethodDelete, "/users/:id", policy.ActionUserDelete, ctrl.DeleteUser)

	w, resp := doRequest(t, router, http.MethodDelete, "/users/"+admin.ID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User deleted", resp.Message)

	w, resp = doRequest(t, router, http.MethodDelete, "/users/"+admin.ID, token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "unauthenticated", resp.Error)
}
