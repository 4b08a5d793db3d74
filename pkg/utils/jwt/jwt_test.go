package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emlakpark_backend/internal/model"
)

func TestGenerateAndValidateToken(t *testing.T) {
	SetSecret("test-secret")

	token, err := GenerateToken(42, "ayse.yilmaz", model.RoleAgent)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "ayse.yilmaz", claims.Username)
	assert.Equal(t, model.RoleAgent, claims.Role)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	SetSecret("first-secret")
	token, err := GenerateToken(1, "admin", model.RoleAdmin)
	require.NoError(t, err)

	SetSecret("second-secret")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	SetSecret("test-secret")
	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}
