package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, r := range AllRoles {
		parsed, err := ParseRole(string(r))
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}

	_, err := ParseRole("owner")
	assert.Error(t, err)

	_, err = ParseRole("Admin")
	assert.Error(t, err, "roles are case sensitive")
}

func TestRoleScanRejectsUnknownValues(t *testing.T) {
	var r Role
	require.NoError(t, r.Scan([]byte("sub-admin")))
	assert.Equal(t, RoleSubAdmin, r)

	assert.Error(t, r.Scan("chef"))
	assert.Error(t, r.Scan(42))
}

func TestParseOrderStatus(t *testing.T) {
	status, err := ParseOrderStatus("completed")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusCompleted, status)

	_, err = ParseOrderStatus("paid")
	assert.Error(t, err)
}
