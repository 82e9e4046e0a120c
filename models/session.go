// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SessionState is the state (or transition outcome) of an account session.
//
// LoggedOut and LoggedIn are durable states. AuthFailed, NameTaken and
// SystemError are only reported as outcomes of a login or signup attempt.
type SessionState int

const (
	LoggedOut SessionState = iota
	LoggedIn
	AuthFailed
	NameTaken
	SystemError
)

func (s SessionState) String() string {
	switch s {
	case LoggedOut:
		return "LOGGED_OUT"
	case LoggedIn:
		return "LOGGED_IN"
	case AuthFailed:
		return "AUTH_FAILED"
	case NameTaken:
		return "NAME_TAKEN"
	case SystemError:
		return "SYSTEM_ERROR"
	default:
		return "UNKNOWN"
	}
}

// IsDurable reports whether a session can rest in s.
func (s SessionState) IsDurable() bool {
	return s == LoggedOut || s == LoggedIn
}

// Credentials is an account name and passphrase pair as entered by the user.
type Credentials struct {
	AccountName string
	Passphrase  string
}
