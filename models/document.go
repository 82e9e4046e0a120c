// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// VaultDocument is the decrypted plaintext of a vault file. The whole
// document is serialized, encrypted as one blob and written as one file.
//
// AccountPassword is kept in cleartext inside the encrypted blob. Settings
// edits compare against it.
type VaultDocument struct {
	AccountName     string  `json:"accountName"`
	AccountPassword string  `json:"accountPassword"`
	Entries         []Entry `json:"entries"`
}

// NewVaultDocument returns an empty document for a freshly created account.
func NewVaultDocument(accountName, accountPassword string) VaultDocument {
	return VaultDocument{
		AccountName:     accountName,
		AccountPassword: accountPassword,
		Entries:         []Entry{},
	}
}

// Marshal serializes the document into its textual form.
func (d VaultDocument) Marshal() (string, error) {
	if d.Entries == nil {
		d.Entries = []Entry{}
	}

	data, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("marshal vault document: %w", err)
	}
	return string(data), nil
}

// UnmarshalVaultDocument parses the textual form produced by Marshal.
// Missing string fields become empty strings and a missing or unknown
// strength category becomes WEAK.
func UnmarshalVaultDocument(text string) (VaultDocument, error) {
	var doc VaultDocument
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return VaultDocument{}, fmt.Errorf("unmarshal vault document: %w", err)
	}
	if doc.Entries == nil {
		doc.Entries = []Entry{}
	}
	return doc, nil
}
