package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/hotel-brand-api/utils"
)

type brandPayload struct {
	Name          string `json:"name" validate:"required"`
	AdminEmail    string `json:"admin_email" validate:"required,email"`
	AdminPassword string `json:"admin_password" validate:"required,min=6"`
	Capacity      int    `json:"capacity" validate:"gt=0"`
	Status        string `json:"status" validate:"omitempty,oneof=pending completed cancelled"`
}

func TestStructAggregatesEveryViolation(t *testing.T) {
	err := Struct(&brandPayload{AdminEmail: "nope", AdminPassword: "123", Status: "lost"})
	require.Error(t, err)

	appErr := utils.AsAppError(err)
	assert.Equal(t, utils.KindValidation, appErr.Kind)
	assert.Equal(t,
		"name is required, admin_email must be a valid email address, "+
			"admin_password must be at least 6 characters long, capacity must be greater than 0, "+
			"status must be one of [pending completed cancelled]",
		appErr.Message)
}

func TestStructPasses(t *testing.T) {
	err := Struct(&brandPayload{Name: "Aurora", AdminEmail: "a@b.io", AdminPassword: "secret", Capacity: 2})
	assert.NoError(t, err)
}

func TestDecode(t *testing.T) {
	got, err := Decode[brandPayload](JSON([]byte(`{"name":"Aurora","admin_email":"a@b.io","admin_password":"secret","capacity":4}`)))
	require.NoError(t, err)
	assert.Equal(t, "Aurora", got.Name)
	assert.Equal(t, 4, got.Capacity)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		decoder Decoder
		message string
	}{
		{name: "nil decoder", decoder: nil, message: "request body is required"},
		{name: "empty body", decoder: JSON(nil), message: "request body is required"},
		{name: "wrong type", decoder: JSON([]byte(`{"capacity":"four"}`)), message: "capacity must be of type int"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode[brandPayload](tt.decoder)
			require.Error(t, err)
			appErr := utils.AsAppError(err)
			assert.Equal(t, utils.KindValidation, appErr.Kind)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}
}

func TestDecoderIsNotCalledUntilDecode(t *testing.T) {
	called := false
	dec := Decoder(func(dst interface{}) error {
		called = true
		return nil
	})
	assert.False(t, called)
	_, _ = Decode[brandPayload](dec)
	assert.True(t, called)
}
