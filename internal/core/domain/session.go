package domain

import (
	"crypto/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// SessionIDPrefix is the prefix for session IDs.
const SessionIDPrefix = "ens-"

// Session records one encryption run.
type Session struct {
	// ID is the unique identifier for the session.
	// Format: ens-{ulid_lowercase}, 30 characters total.
	ID string `json:"id"`

	// Fingerprint identifies the key sheet the machine was configured from.
	Fingerprint string `json:"fingerprint"`

	// StartedAt is the session start timestamp (Unix milliseconds).
	StartedAt int64 `json:"started_at"`

	// Symbols is the number of letters enciphered so far.
	Symbols int64 `json:"symbols"`
}

// NewSession creates a session for a machine with the given fingerprint.
func NewSession(fingerprint string) (*Session, error) {
	id, err := GenerateSessionID()
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:          id,
		Fingerprint: fingerprint,
		StartedAt:   time.Now().UnixMilli(),
	}, nil
}

// GenerateSessionID generates a new session ID.
func GenerateSessionID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return SessionIDPrefix + strings.ToLower(id.String()), nil
}

// StartedAtTime returns StartedAt as time.Time.
func (s *Session) StartedAtTime() time.Time {
	return time.UnixMilli(s.StartedAt)
}

// Elapsed returns the time since the session started.
func (s *Session) Elapsed() time.Duration {
	return time.Since(s.StartedAtTime())
}
