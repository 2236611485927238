package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	sessionID := uuid.New()

	token, err := svc.IssueSessionToken(sessionID)
	require.NoError(t, err)

	parsed, err := svc.ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, parsed)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a", time.Hour).IssueSessionToken(uuid.New())
	require.NoError(t, err)

	_, err = NewTokenService("secret-b", time.Hour).ParseSessionToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenRejectsGarbage(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	_, err := svc.ParseSessionToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenRejectsExpired(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Minute)
	token, err := svc.IssueSessionToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ParseSessionToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
