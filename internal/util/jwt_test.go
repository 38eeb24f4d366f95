package util

import (
	"testing"
	"time"

	"talentscout_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	admin := &model.AdminUser{Username: "admin"}
	admin.ID = 7

	token, err := GenerateJWT(admin, "test-secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.AdminID)
	assert.Equal(t, "admin", claims.Username)
}

func TestParseJWTWrongSecret(t *testing.T) {
	admin := &model.AdminUser{Username: "admin"}

	token, err := GenerateJWT(admin, "test-secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestParseJWTExpired(t *testing.T) {
	admin := &model.AdminUser{Username: "admin"}

	token, err := GenerateJWT(admin, "test-secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "test-secret")
	assert.Error(t, err)
}
