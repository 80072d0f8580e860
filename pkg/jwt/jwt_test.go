package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	token, err := Generate("secret", "user-1", RoleBodeguero, "inventario-stock", 5)
	require.NoError(t, err)

	userID, role, err := Parse("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, RoleBodeguero, role)
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := Generate("secret", "user-1", RoleAdmin, "inventario-stock", 5)
	require.NoError(t, err)

	_, _, err = Parse("otro", token)
	assert.Error(t, err)
}

func TestParse_Expired(t *testing.T) {
	token, err := Generate("secret", "user-1", RoleAdmin, "inventario-stock", -1)
	require.NoError(t, err)

	_, _, err = Parse("secret", token)
	assert.Error(t, err)
}

func TestEmptySecret(t *testing.T) {
	_, err := Generate("", "u", RoleAdmin, "i", 5)
	assert.Error(t, err)
	_, _, err = Parse("", "x.y.z")
	assert.Error(t, err)
}

func TestKnownRole(t *testing.T) {
	assert.True(t, KnownRole(RoleAdmin))
	assert.True(t, KnownRole(RoleBodeguero))
	assert.True(t, KnownRole(RoleViewer))
	assert.False(t, KnownRole("vendedor"))
	assert.False(t, KnownRole(""))
}
