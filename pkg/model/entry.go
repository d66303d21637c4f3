package model

import "time"

// EntryKind distinguishes study blocks from rest blocks.
type EntryKind string

const (
	EntryStudy EntryKind = "study"
	EntryBreak EntryKind = "break"
)

// String returns the string representation of the entry kind.
func (k EntryKind) String() string {
	return string(k)
}

// BreakSubject is the sentinel subject name carried by break entries.
const BreakSubject = "Break"

// ScheduleEntry is one scheduled block: a study session for a subject, or a
// break between sessions. Within one date, entries are totally ordered by
// Start, non-overlapping, and contiguous (each entry's End equals the next
// entry's Start until the day ends).
type ScheduleEntry struct {
	Date            time.Time `json:"date"`
	Start           time.Time `json:"start_time"`
	End             time.Time `json:"end_time"`
	Subject         string    `json:"subject"`
	Kind            EntryKind `json:"kind"`
	DurationMinutes int       `json:"duration_minutes"`
	PriorityScore   float64   `json:"priority_score"`
	Difficulty      int       `json:"difficulty"`
}

// IsBreak reports whether the entry is a rest block.
func (e ScheduleEntry) IsBreak() bool {
	return e.Kind == EntryBreak
}
