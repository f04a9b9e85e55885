package models

import "time"

// Roster row for the instructor panel. Only the identifier is stored --
// datasets and answer keys are always regenerated from it, never persisted.
type Student struct {
	Identifier string    `json:"identifier"`
	FirstSeen  time.Time `json:"first_seen"`
	LastSeen   time.Time `json:"last_seen"`
	Hits       int       `json:"hits"`
}
