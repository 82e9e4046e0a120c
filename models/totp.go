// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// TOTPTick is one emission of a TOTP stream.
type TOTPTick struct {
	// Code is the current 6-digit one-time code.
	Code string
	// SecondsRemaining is the number of whole seconds left in the 30s step.
	SecondsRemaining int
}

func (t TOTPTick) String() string {
	return fmt.Sprintf("%s (%d seconds)", t.Code, t.SecondsRemaining)
}
