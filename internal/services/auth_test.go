package services

import (
	"testing"

	"github.com/lemon-choi/RB-1/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewAuthService(nil, "test-secret")

	user := &models.User{ID: 42, Role: models.RoleAdmin}
	token, err := svc.GenerateToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService(nil, "test-secret")

	_, err := svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewAuthService(nil, "secret-a")
	verifier := NewAuthService(nil, "secret-b")

	token, err := issuer.GenerateToken(&models.User{ID: 1, Role: models.RoleUser})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}
