// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/go-vault-guard/internal/adapter"
	"github.com/MKhiriev/go-vault-guard/internal/generator"
	"github.com/MKhiriev/go-vault-guard/internal/logger"
	"github.com/MKhiriev/go-vault-guard/internal/service"
)

// Checker runs the pwcheck command.
type Checker struct {
	scorer service.Scorer
	breach adapter.BreachChecker
	gen    *generator.Generator
	in     io.Reader
	out    io.Writer
	logger *logger.Logger
}

func NewChecker(scorer service.Scorer, breach adapter.BreachChecker, gen *generator.Generator, in io.Reader, out io.Writer, logger *logger.Logger) *Checker {
	return &Checker{
		scorer: scorer,
		breach: breach,
		gen:    gen,
		in:     in,
		out:    out,
		logger: logger,
	}
}

// Run parses args. With -generate N it prints a password of length N drawn
// from every character class; otherwise it reads a password and checks it.
func (c *Checker) Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("pwcheck", flag.ContinueOnError)
	fs.SetOutput(c.out)

	length := fs.Int("generate", 0, "print a generated password of the given length")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("error parsing flags: %w", err)
	}

	if *length != 0 {
		return c.Generate(*length)
	}

	password, err := GetPassword(c.in, c.out)
	if err != nil {
		return err
	}
	return c.Check(ctx, password)
}

// Generate prints one password of the given length.
func (c *Checker) Generate(length int) error {
	opts := generator.DefaultOptions()
	opts.Length = length

	password, err := c.gen.FromOptions(opts)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.out, password)
	return err
}

// Check prints the strength category and the breach count of password. A
// failed lookup is reported in the output and does not fail the command.
func (c *Checker) Check(ctx context.Context, password string) error {
	category := c.scorer.Score(password)
	if _, err := fmt.Fprintf(c.out, "Strength: %s\n", category.Label()); err != nil {
		return err
	}

	count, err := c.breach.Count(ctx, password)
	switch {
	case errors.Is(err, adapter.ErrTooManyRequests):
		c.logger.Warn().Err(err).Msg("breach api rate limited")
		_, err = fmt.Fprintln(c.out, "Breaches: unknown (rate limited)")
	case err != nil:
		c.logger.Warn().Err(err).Msg("breach lookup failed")
		_, err = fmt.Fprintln(c.out, "Breaches: unknown")
	case count == 0:
		_, err = fmt.Fprintln(c.out, "Breaches: none found")
	default:
		_, err = fmt.Fprintf(c.out, "Breaches: seen %d times\n", count)
	}
	return err
}
