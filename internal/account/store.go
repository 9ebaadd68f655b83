// SPDX-FileCopyrightText: The outside developers
//
// SPDX-License-Identifier: MIT

package account

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

var (
	// ErrNotFound is returned when no user, challenge or session matches.
	ErrNotFound = errors.New("account not found")
	// ErrCodeMismatch is returned when a sign in code does not match or has expired.
	ErrCodeMismatch = errors.New("sign in code mismatch")
)

const codeDigits = 6

// Store is a concurrency-safe in-memory account store. Time is read through
// an injectable clock so expiry behavior is testable.
type Store struct {
	mu sync.RWMutex

	clock      clockwork.Clock
	otpTTL     time.Duration
	sessionTTL time.Duration

	users      map[string]*User // key: normalized email
	challenges map[string]*Challenge
	sessions   map[uuid.UUID]*Session
	prefs      map[uuid.UUID]Preferences
}

// NewStore creates an empty account store with the given expiry windows.
func NewStore(otpTTL, sessionTTL time.Duration) *Store {
	return &Store{
		clock:      clockwork.NewRealClock(),
		otpTTL:     otpTTL,
		sessionTTL: sessionTTL,
		users:      make(map[string]*User),
		challenges: make(map[string]*Challenge),
		sessions:   make(map[uuid.UUID]*Session),
		prefs:      make(map[uuid.UUID]Preferences),
	}
}

// SetClock swaps the store's time source. Pass nil to reset to real time.
func (s *Store) SetClock(clock clockwork.Clock) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if clock == nil {
		s.clock = clockwork.NewRealClock()
		return
	}
	s.clock = clock
}

// Begin starts a one-time-password sign in for the given email and returns
// the code to deliver out of band. A repeated Begin replaces any pending
// challenge for the same email.
func (s *Store) Begin(email string) (*Challenge, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, errors.New("empty email address")
	}
	code, err := generateCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate sign in code: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	challenge := &Challenge{
		Email:     email,
		Code:      code,
		ExpiresAt: s.clock.Now().Add(s.otpTTL),
	}
	s.challenges[email] = challenge
	return challenge, nil
}

// Verify consumes a pending challenge. On success it registers the user if
// needed and mints a new session. Expired or mismatched codes fail with
// ErrCodeMismatch; the challenge survives a mismatch until it expires.
func (s *Store) Verify(email, code string) (*Session, error) {
	email = normalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	challenge, ok := s.challenges[email]
	if !ok {
		return nil, ErrNotFound
	}
	now := s.clock.Now()
	if now.After(challenge.ExpiresAt) {
		delete(s.challenges, email)
		return nil, ErrCodeMismatch
	}
	if challenge.Code != code {
		return nil, ErrCodeMismatch
	}
	delete(s.challenges, email)

	user, ok := s.users[email]
	if !ok {
		user = &User{ID: uuid.New(), Email: email, CreatedAt: now}
		s.users[email] = user
	}

	session := &Session{
		Token:     uuid.New(),
		UserID:    user.ID,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	s.sessions[session.Token] = session
	return session, nil
}

// UserForSession resolves a session token to its user. Expired or unknown
// tokens fail with ErrNotFound.
func (s *Store) UserForSession(token uuid.UUID) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[token]
	if !ok || s.clock.Now().After(session.ExpiresAt) {
		return nil, ErrNotFound
	}
	for _, user := range s.users {
		if user.ID == session.UserID {
			return user, nil
		}
	}
	return nil, ErrNotFound
}

// SignOut removes a session. Removing an unknown session is not an error.
func (s *Store) SignOut(token uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// PreferencesFor returns the stored preferences of a user, zero when unset.
func (s *Store) PreferencesFor(userID uuid.UUID) Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs[userID]
}

// SetPreferences stores the preferences of a user.
func (s *Store) SetPreferences(userID uuid.UUID, prefs Preferences) error {
	if prefs.Units != "" && prefs.Units != "metric" && prefs.Units != "imperial" {
		return fmt.Errorf("invalid units: %s", prefs.Units)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs[userID] = prefs
	return nil
}

// Sweep drops expired challenges and sessions. It runs on a schedule so
// abandoned sign ins do not accumulate.
func (s *Store) Sweep() (removed int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	for email, challenge := range s.challenges {
		if now.After(challenge.ExpiresAt) {
			delete(s.challenges, email)
			removed++
		}
	}
	for token, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func generateCode() (string, error) {
	var code strings.Builder
	for range codeDigits {
		digit, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		code.WriteByte(byte('0' + digit.Int64()))
	}
	return code.String(), nil
}
