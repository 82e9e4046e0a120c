// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package strength rates passwords with an additive point model: length and
// character classes earn points, an entropy estimate adds a bonus, and
// similarity to common passwords or English words subtracts points.
package strength

import (
	"context"
	"math"
	"unicode/utf8"

	"github.com/MKhiriev/go-vault-guard/internal/fuzzy"
	"github.com/MKhiriev/go-vault-guard/internal/workers"
	"github.com/MKhiriev/go-vault-guard/models"
)

const (
	pointsPerRune     = 8
	pointsDigit       = 8
	pointsUpper       = 4
	pointsLower       = 4
	pointsMixedCase   = 8
	pointsSpecial     = 12
	exactMatchPenalty = -100
	similarityFactor  = -2
	partialHit        = 2
	tokenSetHit       = 8
	similarityCutoff  = 85
)

// Calculator scores passwords against a fixed pair of dictionaries.
type Calculator struct {
	dicts     Dictionaries
	exact     map[string]struct{}
	scheduler *workers.Scheduler
}

// NewCalculator builds a Calculator. The scheduler is only needed by
// ScoreAsync and may be nil otherwise.
func NewCalculator(dicts Dictionaries, scheduler *workers.Scheduler) *Calculator {
	exact := make(map[string]struct{}, len(dicts.Passwords)+len(dicts.Words))
	for _, w := range dicts.Passwords {
		exact[w] = struct{}{}
	}
	for _, w := range dicts.Words {
		exact[w] = struct{}{}
	}

	return &Calculator{
		dicts:     dicts,
		exact:     exact,
		scheduler: scheduler,
	}
}

// Score returns the strength category of password.
func (c *Calculator) Score(password string) models.StrengthCategory {
	return CategoryForPoints(c.Points(password))
}

// ScoreAsync scores password on the scheduler. The channel yields one value
// and is closed; it is closed without a value when ctx is done before
// scoring starts or the scheduler is shut down.
func (c *Calculator) ScoreAsync(ctx context.Context, password string) <-chan models.StrengthCategory {
	out := make(chan models.StrengthCategory, 1)
	started := c.scheduler.Go(func(context.Context) {
		defer close(out)
		if ctx.Err() != nil {
			return
		}
		out <- c.Score(password)
	})
	if !started {
		close(out)
	}
	return out
}

// Points returns the raw score of password before categorisation.
func (c *Calculator) Points(password string) int {
	classes := classify(password)
	length := utf8.RuneCountInString(password)

	points := length * pointsPerRune
	if classes.digit {
		points += pointsDigit
	}
	if classes.upper {
		points += pointsUpper
	}
	if classes.lower {
		points += pointsLower
	}
	if classes.upper && classes.lower {
		points += pointsMixedCase
	}
	if classes.special {
		points += pointsSpecial
	}
	points += entropyBonus(length, classes.space())
	points += c.similarityPenalty(password)

	return points
}

func (c *Calculator) similarityPenalty(password string) int {
	if _, ok := c.exact[password]; ok {
		return exactMatchPenalty
	}

	hits := similarityHits(password, c.dicts.Words) + similarityHits(password, c.dicts.Passwords)
	return hits * similarityFactor
}

func similarityHits(password string, list []string) int {
	hits := 0
	for _, word := range list {
		if fuzzy.PartialRatio(password, word) > similarityCutoff {
			hits += partialHit
		}
		if fuzzy.TokenSetRatio(password, word) > similarityCutoff {
			hits += tokenSetHit
		}
	}
	return hits
}

// CategoryForPoints maps a raw score to its category.
func CategoryForPoints(points int) models.StrengthCategory {
	switch {
	case points <= 30:
		return models.VeryWeak
	case points <= 60:
		return models.Weak
	case points < 90:
		return models.Moderate
	case points < 120:
		return models.Strong
	default:
		return models.VeryStrong
	}
}

type charClasses struct {
	digit, upper, lower, special bool
}

func classify(password string) charClasses {
	var cc charClasses
	for _, r := range password {
		switch {
		case r >= '0' && r <= '9':
			cc.digit = true
		case r >= 'A' && r <= 'Z':
			cc.upper = true
		case r >= 'a' && r <= 'z':
			cc.lower = true
		default:
			cc.special = true
		}
	}
	return cc
}

// space is the size of the alphabet implied by the classes present.
func (cc charClasses) space() int {
	size := 0
	if cc.lower {
		size += 26
	}
	if cc.upper {
		size += 26
	}
	if cc.digit {
		size += 10
	}
	if cc.special {
		size += 20
	}
	return size
}

func entropyBonus(length, space int) int {
	if length == 0 || space == 0 {
		return 0
	}

	entropy := float64(length) * math.Log2(float64(space))
	switch {
	case entropy >= 100:
		return 10
	case entropy >= 80:
		return 8
	case entropy >= 60:
		return 6
	case entropy >= 40:
		return 4
	case entropy >= 20:
		return 2
	default:
		return 0
	}
}
