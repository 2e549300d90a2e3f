package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	token, err := Generate("secret", "u-1", "r-1", "MANAGER", "barapp-api", 5)
	require.NoError(t, err)

	claims, err := Parse("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "r-1", claims.RestaurantID)
	assert.Equal(t, "MANAGER", claims.Role)
	assert.Equal(t, "barapp-api", claims.Issuer)
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := Generate("secret", "u-1", "r-1", "ADMIN", "barapp-api", 5)
	require.NoError(t, err)

	_, err = Parse("otro", token)
	assert.Error(t, err)
}

func TestParse_Expired(t *testing.T) {
	token, err := Generate("secret", "u-1", "r-1", "ADMIN", "barapp-api", -1)
	require.NoError(t, err)

	_, err = Parse("secret", token)
	assert.Error(t, err)
}

func TestEmptySecret(t *testing.T) {
	_, err := Generate("", "u", "r", "ADMIN", "i", 5)
	assert.Error(t, err)
	_, err = Parse("", "x.y.z")
	assert.Error(t, err)
}
