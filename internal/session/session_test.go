package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codguard/codguard/internal/common"
)

func setTempHome(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "u1"}
	if !exp.IsZero() {
		claims["exp"] = exp.Unix()
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestSession_SaveLoadClear(t *testing.T) {
	setTempHome(t)

	_, err := Load()
	assert.ErrorIs(t, err, common.ErrNoSession)

	saved := &Session{
		Token:  signedToken(t, time.Now().Add(1*time.Hour)),
		UserID: "u1",
		Email:  "ops@merchant.pk",
		Name:   "Ops",
		Role:   "admin",
	}
	require.NoError(t, Save(saved))

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, saved.Token, loaded.Token)
	assert.Equal(t, "ops@merchant.pk", loaded.Email)
	assert.Equal(t, "admin", loaded.Role)
	assert.False(t, loaded.SavedAt.IsZero())

	require.NoError(t, Clear())
	_, err = Load()
	assert.ErrorIs(t, err, common.ErrNoSession)

	// Clearing twice is fine.
	assert.NoError(t, Clear())
}

func TestSession_ExpiredTokenRejected(t *testing.T) {
	setTempHome(t)

	require.NoError(t, Save(&Session{
		Token: signedToken(t, time.Now().Add(-1*time.Minute)),
		Email: "ops@merchant.pk",
	}))

	_, err := Load()
	assert.ErrorIs(t, err, common.ErrSessionExpired)

	// The dead session was cleared on load.
	_, err = Load()
	assert.ErrorIs(t, err, common.ErrNoSession)
}

func TestSession_OpaqueTokenAccepted(t *testing.T) {
	setTempHome(t)

	require.NoError(t, Save(&Session{Token: "not-a-jwt", Email: "ops@merchant.pk"}))

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "not-a-jwt", loaded.Token)
}

func TestSession_NoExpClaimNeverExpiresLocally(t *testing.T) {
	setTempHome(t)

	require.NoError(t, Save(&Session{Token: signedToken(t, time.Time{})}))
	_, err := Load()
	assert.NoError(t, err)
}
