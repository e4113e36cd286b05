package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 15)

	token, err := svc.Generate(42, "Dana Reyes", "director")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.FacilityID)
	assert.Equal(t, "Dana Reyes", claims.ActorName)
	assert.Equal(t, "director", claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	svc := NewJWTService("test-secret", 15)
	other := NewJWTService("other-secret", 15)

	token, err := svc.Generate(1, "Dana Reyes", "staff")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_Garbage(t *testing.T) {
	svc := NewJWTService("test-secret", 15)

	_, err := svc.Verify("not-a-token")
	assert.Error(t, err)
}

func TestJWTService_Verify_Expired(t *testing.T) {
	svc := NewJWTService("test-secret", -1)

	token, err := svc.Generate(1, "Dana Reyes", "staff")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.Error(t, err)
}
