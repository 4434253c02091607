// Copyright (C) 2025 NeuroAide (contact@neuroaide.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package conversation keeps the short in-memory message log used to build
// generative prompts. History is process-local and intentionally not
// persisted; a restart starts every user from a clean slate.
package conversation

import (
	"sync"
	"time"
)

// MaxStoredPerUser caps how many messages are retained for a single user.
// Prompts only ever read the last few messages, so anything beyond this cap
// is dead weight that would otherwise grow without bound per user id.
const MaxStoredPerUser = 50

type userLog struct {
	messages []string
	lastSeen time.Time
}

// History maps user ids to their ordered recent messages.
//
// # Thread Safety
//
// All methods are safe for concurrent use. Appends for a single user are
// serialized under the write lock, so submission order observed by the
// server is the order readers see.
type History struct {
	mu    sync.RWMutex
	users map[string]*userLog

	// now is overridable in tests to exercise idle eviction.
	now func() time.Time
}

// NewHistory creates an empty conversation history.
func NewHistory() *History {
	return &History{
		users: make(map[string]*userLog),
		now:   time.Now,
	}
}

// Append records a message for the given user, creating the log if absent.
// Storage is bounded to MaxStoredPerUser entries; the oldest entries are
// dropped first.
func (h *History) Append(userID, message string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	log, ok := h.users[userID]
	if !ok {
		log = &userLog{}
		h.users[userID] = log
	}
	log.messages = append(log.messages, message)
	if len(log.messages) > MaxStoredPerUser {
		// Copy instead of re-slicing so the backing array does not pin
		// dropped messages.
		trimmed := make([]string, MaxStoredPerUser)
		copy(trimmed, log.messages[len(log.messages)-MaxStoredPerUser:])
		log.messages = trimmed
	}
	log.lastSeen = h.now()
}

// Recent returns the last n messages for the user, oldest to newest.
// Unknown users yield an empty slice. The returned slice is a copy.
func (h *History) Recent(userID string, n int) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	log, ok := h.users[userID]
	if !ok || n <= 0 {
		return []string{}
	}
	start := len(log.messages) - n
	if start < 0 {
		start = 0
	}
	recent := make([]string, len(log.messages)-start)
	copy(recent, log.messages[start:])
	return recent
}

// Len reports how many messages are stored for the user.
func (h *History) Len(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	log, ok := h.users[userID]
	if !ok {
		return 0
	}
	return len(log.messages)
}

// Users reports how many distinct user ids currently hold history.
func (h *History) Users() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.users)
}

// EvictIdle drops every user whose last message is older than maxIdle and
// returns the number of users removed. Called periodically by the Sweeper.
func (h *History) EvictIdle(maxIdle time.Duration) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	cutoff := h.now().Add(-maxIdle)
	evicted := 0
	for id, log := range h.users {
		if log.lastSeen.Before(cutoff) {
			delete(h.users, id)
			evicted++
		}
	}
	return evicted
}
