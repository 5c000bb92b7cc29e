// Package domain contains core concepts of the chat room.
// This file defines Participant entities and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

import "time"

// Participant represents a user currently present in the room.
// The display name is the sole identity key: at most one record
// exists per name at any time.
type Participant struct {
	Name     string
	LastSeen time.Time // last heartbeat; joining counts as one
}

// StaleAt reports whether the participant exceeded the liveness
// threshold at the given instant. Staleness is a latent condition:
// only the reaper acts on it, reads still treat the record as active.
func (p Participant) StaleAt(now time.Time, threshold time.Duration) bool {
	return now.Sub(p.LastSeen) > threshold
}
