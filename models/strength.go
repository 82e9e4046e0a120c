// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"strings"
)

// StrengthCategory is the bucketed result of password strength scoring.
type StrengthCategory int

const (
	VeryWeak StrengthCategory = iota
	Weak
	Moderate
	Strong
	VeryStrong
)

var strengthNames = map[StrengthCategory]string{
	VeryWeak:   "VERY_WEAK",
	Weak:       "WEAK",
	Moderate:   "MODERATE",
	Strong:     "STRONG",
	VeryStrong: "VERY_STRONG",
}

var strengthColors = map[StrengthCategory]string{
	VeryWeak:   "#f80000",
	Weak:       "#FF3500",
	Moderate:   "#ff8000",
	Strong:     "#60b700",
	VeryStrong: "#00ad3f",
}

// String returns the persisted enum name, e.g. "VERY_WEAK".
func (c StrengthCategory) String() string {
	if name, ok := strengthNames[c]; ok {
		return name
	}
	return strengthNames[Weak]
}

// Color returns the hex colour used to render the category.
func (c StrengthCategory) Color() string {
	if color, ok := strengthColors[c]; ok {
		return color
	}
	return strengthColors[Weak]
}

// Label returns a human readable form of the category, e.g. "Very weak".
func (c StrengthCategory) Label() string {
	name := strings.ReplaceAll(strings.ToLower(c.String()), "_", " ")
	return strings.ToUpper(name[:1]) + name[1:]
}

// ParseStrengthCategory maps an enum name to its category. Unknown names
// parse to WEAK.
func ParseStrengthCategory(name string) StrengthCategory {
	for c, n := range strengthNames {
		if n == name {
			return c
		}
	}
	return Weak
}

func (c StrengthCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *StrengthCategory) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		*c = Weak
		return nil
	}
	*c = ParseStrengthCategory(name)
	return nil
}
