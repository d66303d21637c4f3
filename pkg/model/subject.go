package model

import "time"

// Subject is one unit of study work: a deadline, the total effort still
// required, and a difficulty rating used for prioritization. Names are
// unique within one scheduling request.
type Subject struct {
	Name        string    `json:"name"`
	Deadline    time.Time `json:"deadline"`
	HoursNeeded float64   `json:"hours_needed"`
	Difficulty  int       `json:"difficulty"`

	// Importance is optional; zero means unset and falls back to Difficulty.
	Importance int `json:"importance,omitempty"`
}

// EffectiveImportance returns Importance, or Difficulty when unset.
func (s Subject) EffectiveImportance() int {
	if s.Importance == 0 {
		return s.Difficulty
	}
	return s.Importance
}
