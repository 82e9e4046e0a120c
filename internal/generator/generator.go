// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package generator synthesises random passwords from configurable
// character categories.
package generator

import (
	crand "crypto/rand"
	"math/rand/v2"
	"strings"
	"sync"
)

// Character categories. Lowercase letters are always part of the set.
const (
	Lower   = "abcdefghijklmnopqrstuvwxyz"
	Upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits  = "0123456789"
	Special = "!@#$%&*()_+-=[]|/?><"
)

// MinLength is the shortest password Generate accepts.
const MinLength = 4

// Generator draws passwords from a ChaCha8 stream. It is safe for
// concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Generator seeded from crypto/rand.
func New() *Generator {
	var seed [32]byte
	_, _ = crand.Read(seed[:])
	return NewWithSource(rand.NewChaCha8(seed))
}

// NewWithSource returns a Generator drawing from src.
func NewWithSource(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// Generate returns a password of exactly length characters. Every enabled
// category contributes at least one character unless all of its characters
// are forbidden. When forbidden removes every available character the result
// is the empty string with a nil error.
func (g *Generator) Generate(length int, includeUpper, includeDigits, includeSpecial bool, forbidden string) (string, error) {
	if length < MinLength {
		return "", ErrInvalidLength
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	var enabled []string
	if includeUpper {
		enabled = append(enabled, Upper)
	}
	if includeDigits {
		enabled = append(enabled, Digits)
	}
	if includeSpecial {
		enabled = append(enabled, Special)
	}

	charset := Lower + strings.Join(enabled, "")
	mandatory := make([]byte, 0, len(enabled))
	for _, category := range enabled {
		if c, ok := g.pick(without(category, forbidden)); ok {
			mandatory = append(mandatory, c)
		}
	}

	charset = without(charset, forbidden)
	if charset == "" {
		return "", nil
	}

	mandatory = g.ensureMandatory(mandatory, enabled, charset)

	password := make([]byte, 0, length)
	for range length - len(mandatory) {
		password = append(password, charset[g.rng.IntN(len(charset))])
	}

	g.shuffle(mandatory)
	password = append(password, mandatory...)
	g.shuffle(password)

	return string(password), nil
}

// FromOptions is Generate driven by an Options value.
func (g *Generator) FromOptions(opts Options) (string, error) {
	return g.Generate(opts.Length, opts.Upper, opts.Digits, opts.Special, opts.Forbidden)
}

// ensureMandatory keeps one pick per enabled category that is still part of
// charset and redraws a missing one from the category's surviving characters.
func (g *Generator) ensureMandatory(mandatory []byte, enabled []string, charset string) []byte {
	kept := mandatory[:0]
	for _, c := range mandatory {
		if strings.IndexByte(charset, c) >= 0 {
			kept = append(kept, c)
		}
	}

	for _, category := range enabled {
		if containsAny(kept, category) {
			continue
		}
		if c, ok := g.pick(intersect(category, charset)); ok {
			kept = append(kept, c)
		}
	}
	return kept
}

func (g *Generator) pick(chars string) (byte, bool) {
	if chars == "" {
		return 0, false
	}
	return chars[g.rng.IntN(len(chars))], true
}

func (g *Generator) shuffle(b []byte) {
	g.rng.Shuffle(len(b), func(i, j int) {
		b[i], b[j] = b[j], b[i]
	})
}

func without(chars, forbidden string) string {
	if forbidden == "" {
		return chars
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(forbidden, r) {
			return -1
		}
		return r
	}, chars)
}

func intersect(chars, allowed string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(allowed, r) {
			return r
		}
		return -1
	}, chars)
}

func containsAny(b []byte, chars string) bool {
	for _, c := range b {
		if strings.IndexByte(chars, c) >= 0 {
			return true
		}
	}
	return false
}
