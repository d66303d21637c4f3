package model

// Schedule is the complete result of one scheduling run: the flat entry
// sequence in (Date, Start) order, plus any effort that did not fit the
// horizon. Overflow is part of a successful result, never an error.
type Schedule struct {
	Entries  []ScheduleEntry `json:"entries"`
	Overflow []Overflow      `json:"overflow,omitempty"`
	Summary  ScheduleSummary `json:"summary"`
}

// Overflow reports a subject whose remaining effort did not fit within the
// scheduling horizon.
type Overflow struct {
	Subject          string `json:"subject"`
	RemainingMinutes int    `json:"remaining_minutes"`
}

// RemainingHours returns the unscheduled effort in hours.
func (o Overflow) RemainingHours() float64 {
	return float64(o.RemainingMinutes) / 60
}

// ScheduleSummary provides aggregate counts over a schedule's entries.
type ScheduleSummary struct {
	Days         int `json:"days"`
	Sessions     int `json:"sessions"`
	StudyMinutes int `json:"study_minutes"`
	BreakMinutes int `json:"break_minutes"`
}

// ComputeSummary calculates the ScheduleSummary from a slice of entries.
// Entries are assumed to be in (Date, Start) order.
func ComputeSummary(entries []ScheduleEntry) ScheduleSummary {
	var s ScheduleSummary
	var prev = int64(-1)
	for _, e := range entries {
		if d := e.Date.Unix(); d != prev {
			s.Days++
			prev = d
		}
		switch e.Kind {
		case EntryStudy:
			s.Sessions++
			s.StudyMinutes += e.DurationMinutes
		case EntryBreak:
			s.BreakMinutes += e.DurationMinutes
		}
	}
	return s
}
