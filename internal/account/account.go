// SPDX-FileCopyrightText: The outside developers
//
// SPDX-License-Identifier: MIT

// Package account manages user accounts, one-time-password sign in, and
// per-user display preferences.
package account

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account, keyed by its normalized email address.
type User struct {
	ID        uuid.UUID
	Email     string
	CreatedAt time.Time
}

// Preferences are the per-user display settings applied at the request
// boundary. Empty values fall back to the server defaults.
type Preferences struct {
	// Allowed values: metric, imperial
	Units  string
	Locale string
}

// Challenge is a pending one-time-password sign in attempt.
type Challenge struct {
	Email     string
	Code      string
	ExpiresAt time.Time
}

// Session is an authenticated browser session.
type Session struct {
	Token     uuid.UUID
	UserID    uuid.UUID
	ExpiresAt time.Time
}
