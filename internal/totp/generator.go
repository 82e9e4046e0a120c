// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package totp

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-vault-guard/internal/workers"
	"github.com/MKhiriev/go-vault-guard/models"
)

// Generator delivers a TOTP tick to a single consumer once per interval.
// Starting a new stream replaces the previous one.
type Generator struct {
	scheduler *workers.Scheduler
	interval  time.Duration
	now       func() time.Time

	mu  sync.Mutex
	job *workers.Job
}

// NewGenerator returns an idle Generator whose streams run on scheduler.
func NewGenerator(scheduler *workers.Scheduler, interval time.Duration) *Generator {
	return &Generator{
		scheduler: scheduler,
		interval:  interval,
		now:       time.Now,
	}
}

// Start validates seed, stops the current stream and begins delivering
// ticks to consumer, the first one immediately. consumer runs on a
// scheduler goroutine and must not call Start or Stop.
func (g *Generator) Start(seed string, consumer func(models.TOTPTick)) error {
	if _, err := Code(seed, g.now()); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.stopLocked()
	g.job = g.scheduler.Every(g.interval, func(context.Context) {
		now := g.now()
		code, err := Code(seed, now)
		if err != nil {
			return
		}
		consumer(models.TOTPTick{Code: code, SecondsRemaining: SecondsRemaining(now)})
	})
	return nil
}

// Stop detaches the consumer. No tick is delivered after Stop returns.
func (g *Generator) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.stopLocked()
}

// Running reports whether a stream is active.
func (g *Generator) Running() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.job != nil
}

func (g *Generator) stopLocked() {
	if g.job == nil {
		return
	}
	g.job.Stop()
	g.job = nil
}
