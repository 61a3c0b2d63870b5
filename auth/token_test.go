package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/borovikovd/realworld-backend-go/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundtrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(42)
	require.NoError(t, err)

	userID, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestTokenWrongSecretRejected(t *testing.T) {
	token, err := NewTokenService("secret", time.Hour).Issue(42)
	require.NoError(t, err)

	_, err = NewTokenService("other", time.Hour).Verify(token)
	require.Error(t, err)
	assert.True(t, errs.IsInvalidTokenError(err))
}

func TestTokenExpiredRejected(t *testing.T) {
	svc := NewTokenService("secret", -time.Minute)

	token, err := svc.Issue(42)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrExpiredToken))
}

func TestTokenGarbageRejected(t *testing.T) {
	_, err := NewTokenService("secret", time.Hour).Verify("not.a.jwt")
	require.Error(t, err)
	assert.True(t, errs.IsInvalidTokenError(err))
}

func TestPasswordHashRoundtrip(t *testing.T) {
	hasher := NewPasswordHasher()

	hash, err := hasher.Hash("hunter2hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", hash)

	assert.True(t, hasher.Verify(hash, "hunter2hunter2"))
	assert.False(t, hasher.Verify(hash, "wrong"))
}
