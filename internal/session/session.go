// Package session persists the operator's login identity between runs with
// an explicit load/save/clear lifecycle and an expiry check on the token.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/codguard/codguard/internal/common"
	"github.com/codguard/codguard/internal/config"
)

// Session is the saved identity issued at login.
type Session struct {
	Token   string    `json:"token"`
	UserID  string    `json:"user_id"`
	Email   string    `json:"email"`
	Name    string    `json:"name"`
	Role    string    `json:"role"`
	SavedAt time.Time `json:"saved_at"`
}

// Load reads the saved session and rejects it when the token has expired.
// Returns common.ErrNoSession when none has been saved.
func Load() (*Session, error) {
	path, err := config.SessionFile()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, common.ErrNoSession
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}
	if sess.Token == "" {
		return nil, common.ErrNoSession
	}

	if expired(sess.Token, time.Now()) {
		slog.Info("Saved session has expired, clearing it", "email", sess.Email)
		_ = Clear()
		return nil, common.ErrSessionExpired
	}

	return &sess, nil
}

// Save persists the session, readable by the owner only.
func Save(sess *Session) error {
	path, err := config.SessionFile()
	if err != nil {
		return fmt.Errorf("failed to resolve session path: %w", err)
	}

	sess.SavedAt = time.Now()
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

// Clear removes the saved session. Clearing an absent session is not an error.
func Clear() error {
	path, err := config.SessionFile()
	if err != nil {
		return fmt.Errorf("failed to resolve session path: %w", err)
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	return nil
}

// expired inspects the token's exp claim without verifying the signature;
// only the backend holds the key, the client just avoids sending a token it
// already knows is dead. Tokens without an exp claim never expire locally.
func expired(token string, now time.Time) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		// Opaque non-JWT tokens are left to the backend to judge.
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
