// Package session provides viewer session management.
//
// A session captures what a viewer is looking at: the accession, the
// visible range, and the enabled tracks. The server uses sessions to
// restore a browser state across requests and to share a view between
// synchronized clients; the CLI uses them to reopen the last view.
//
// This package defines the Store interface with implementations for
// different backends:
//   - memory: In-memory storage for development/testing
//   - file: File-based storage for CLI usage
//   - mongo: MongoDB-backed storage for server deployments
//
// # Usage
//
// Create a session store:
//
//	// Development
//	store := session.NewMemoryStore()
//
//	// CLI
//	store, err := session.NewFileStore("")  // Uses ~/.config/nightingale/sessions/
//
//	// Server
//	store, err := session.NewMongoStore(ctx, session.MongoConfig{
//	    URI: "mongodb://localhost:27017",
//	})
//
// Manage sessions:
//
//	sess := session.New("P05067", session.DefaultTTL)
//	sess.DisplayStart, sess.DisplayEnd = 250, 260
//	store.Set(ctx, sess)
//
//	sess, err := store.Get(ctx, sessionID)
//	if sess == nil {
//	    // Session not found or expired
//	}
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Sentinel errors for session operations.
var (
	// ErrNotFound is returned when a session does not exist.
	ErrNotFound = errors.New("not found")

	// ErrExpired is returned when a session has exceeded its TTL.
	ErrExpired = errors.New("expired")
)

// Session stores the state of one viewer.
type Session struct {
	ID           string    `json:"id" bson:"_id"`
	Accession    string    `json:"accession" bson:"accession"`
	DisplayStart float64   `json:"display_start" bson:"display_start"`
	DisplayEnd   float64   `json:"display_end" bson:"display_end"`
	Tracks       []string  `json:"tracks" bson:"tracks"`
	ExpiresAt    time.Time `json:"expires_at" bson:"expires_at"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// IsExpired returns true if the session has expired.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Touch updates the modification timestamp. Stores call it on Set so
// clients never need to manage UpdatedAt themselves.
func (s *Session) Touch() {
	s.UpdatedAt = time.Now()
}

// Store is the interface for session storage backends.
type Store interface {
	// Get retrieves a session by ID.
	// Returns nil, nil if the session doesn't exist or has expired.
	Get(ctx context.Context, sessionID string) (*Session, error)

	// Set stores a session.
	Set(ctx context.Context, session *Session) error

	// Delete removes a session.
	Delete(ctx context.Context, sessionID string) error

	// Cleanup removes expired sessions (may be a no-op for backends
	// with native expiry).
	Cleanup(ctx context.Context) error
}

// Default durations.
const (
	// DefaultTTL is the default session duration.
	DefaultTTL = 24 * time.Hour
)

// GenerateID creates a new random session ID.
func GenerateID() string {
	return uuid.NewString()
}

// New creates a session for the given accession with a fresh ID. The
// visible range starts unset; the caller fills it in once the viewport
// reconciles.
func New(accession string, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:        GenerateID(),
		Accession: accession,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
