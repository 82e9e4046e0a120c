// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Entry is one stored credential of a vault.
//
// Title is the selector used by delete and update. It is unique by convention
// only: when two entries share a title the first one wins.
type Entry struct {
	// Title is the display name of the credential.
	Title string `json:"title"`

	// Username is the login identifier used on the website.
	Username string `json:"username"`

	// Website is the address the credential belongs to. It is also the input
	// of the icon resolver.
	Website string `json:"website"`

	// Email is an optional contact address registered with the website.
	Email string `json:"email"`

	// OneTimePasswordSeed is the base32 TOTP secret, empty when the account
	// has no second factor.
	OneTimePasswordSeed string `json:"oneTimePasswordSeed"`

	// Password is the stored secret.
	Password string `json:"password"`

	// Favourite marks the entry for the favourites view.
	Favourite bool `json:"favourite"`

	// Compromised is set by a breach check only and cleared when the password
	// is edited.
	Compromised bool `json:"compromised"`

	// StrengthCategory caches the last computed strength of Password.
	StrengthCategory StrengthCategory `json:"strengthCategory"`

	// Icon is a local file path resolved from Website. It is never persisted.
	Icon *string `json:"-"`
}

// EntryField is a labelled entry value shown by the detail view.
type EntryField struct {
	Label string
	Value string
}

// NewEntry returns an entry with the default WEAK strength category.
func NewEntry(title string) Entry {
	return Entry{Title: title, StrengthCategory: Weak}
}

// NonEmptyFields returns the labelled non-empty credential fields in display
// order: Username, Website, Email, Password, TOTP.
func (e Entry) NonEmptyFields() []EntryField {
	candidates := []EntryField{
		{Label: "Username", Value: e.Username},
		{Label: "Website", Value: e.Website},
		{Label: "Email", Value: e.Email},
		{Label: "Password", Value: e.Password},
		{Label: "TOTP", Value: e.OneTimePasswordSeed},
	}

	fields := make([]EntryField, 0, len(candidates))
	for _, f := range candidates {
		if f.Value != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// UnmarshalJSON decodes an entry, keeping WEAK as the strength category when
// the field is absent.
func (e *Entry) UnmarshalJSON(b []byte) error {
	type plainEntry Entry
	decoded := plainEntry(NewEntry(""))
	if err := json.Unmarshal(b, &decoded); err != nil {
		return err
	}
	*e = Entry(decoded)
	return nil
}

// HasIcon reports whether an icon path was resolved for the entry.
func (e Entry) HasIcon() bool {
	return e.Icon != nil && *e.Icon != ""
}
