// Copyright (C) 2025 NeuroAide (contact@neuroaide.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package conversation

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// SweeperConfig holds configuration for the background history sweeper.
//
// # Fields
//
//   - Interval: How often to scan for idle users. Default: 10 minutes.
//   - MaxIdle: How long a user may stay silent before their history is
//     evicted. Default: 1 hour.
type SweeperConfig struct {
	Interval time.Duration
	MaxIdle  time.Duration
}

// DefaultSweeperConfig returns sensible defaults for the sweeper.
func DefaultSweeperConfig() SweeperConfig {
	return SweeperConfig{
		Interval: 10 * time.Minute,
		MaxIdle:  1 * time.Hour,
	}
}

// Sweeper periodically evicts idle users from a History so that sustained
// traffic from many distinct user ids cannot grow memory without bound.
//
// Uses the ticker + done channel pattern for graceful shutdown. All public
// methods are thread-safe.
type Sweeper struct {
	history *History
	config  SweeperConfig
	done    chan struct{}
	mu      sync.Mutex
	running bool
}

// NewSweeper creates a sweeper for the given history. It does not start it;
// call Start once the service is up.
func NewSweeper(history *History, config SweeperConfig) *Sweeper {
	if config.Interval <= 0 {
		config.Interval = DefaultSweeperConfig().Interval
	}
	if config.MaxIdle <= 0 {
		config.MaxIdle = DefaultSweeperConfig().MaxIdle
	}
	return &Sweeper{
		history: history,
		config:  config,
		done:    make(chan struct{}),
	}
}

// Start launches the background sweep goroutine. Returns an error if the
// sweeper is already running.
func (s *Sweeper) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return fmt.Errorf("sweeper already running")
	}
	s.running = true
	go s.run()
	slog.Info("Conversation sweeper started",
		"interval", s.config.Interval, "max_idle", s.config.MaxIdle)
	return nil
}

// Stop signals the sweep goroutine to exit. Safe to call more than once.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return
	}
	s.running = false
	close(s.done)
	slog.Info("Conversation sweeper stopped")
}

func (s *Sweeper) run() {
	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if evicted := s.history.EvictIdle(s.config.MaxIdle); evicted > 0 {
				slog.Info("Evicted idle conversation histories",
					"users", evicted, "max_idle", s.config.MaxIdle)
			}
		case <-s.done:
			return
		}
	}
}
