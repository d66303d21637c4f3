// Package scheduler implements the Schedulyze scheduling engine: priority
// scoring, proportional daily time allocation, block packing with breaks,
// and the multi-day horizon loop that ties them together. The engine is a
// pure computation: one call, one complete schedule, no clock reads and no
// I/O.
package scheduler

import (
	"log/slog"
	"math"
	"time"

	"github.com/Aanishnithin07/Schedulyze/pkg/model"
)

// MaxHorizonDays caps the scheduling window to bound worst-case work.
const MaxHorizonDays = 365

// Planner generates complete study schedules. It holds only read-only
// configuration, so a single Planner is safe for concurrent use.
type Planner struct {
	scorer    Scorer
	validator *Validator
	logger    *slog.Logger
}

// NewPlanner creates a Planner using the given scorer. A nil logger falls
// back to slog.Default().
func NewPlanner(scorer Scorer, logger *slog.Logger) *Planner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Planner{
		scorer:    scorer,
		validator: NewValidator(scorer),
		logger:    logger.With("component", "planner"),
	}
}

// Generate computes a day-by-day schedule for the subjects, walking up to
// settings.HorizonDays calendar days from startDate. Inputs are validated up
// front and rejected before any scheduling happens; the caller's slices are
// never mutated. Effort that does not fit the horizon is reported on
// Schedule.Overflow, never as an error.
func (p *Planner) Generate(subjects []model.Subject, settings model.ScheduleSettings, startDate time.Time) (*model.Schedule, error) {
	if err := p.validator.Validate(subjects, settings); err != nil {
		return nil, err
	}

	start := midnightUTC(startDate)
	startOfDay := dayStartOffset(settings)

	// Remaining need per subject, in whole minutes. Hours convert once here
	// so no float drift accumulates across days. Input order is kept for
	// deterministic tie-breaks and overflow reporting.
	remaining := make([]int, len(subjects))
	left := 0
	for i, sub := range subjects {
		remaining[i] = int(math.Round(sub.HoursNeeded * 60))
		left += remaining[i]
	}

	var entries []model.ScheduleEntry
	for offset := 0; offset < settings.HorizonDays && left > 0; offset++ {
		date := start.AddDate(0, 0, offset)
		if !settings.IncludeWeekends && isWeekend(date) {
			continue
		}

		scored := make([]scoredSubject, 0, len(subjects))
		for i, sub := range subjects {
			if remaining[i] == 0 {
				continue
			}
			scored = append(scored, scoredSubject{
				subject:   sub,
				score:     p.scorer.Score(sub, date),
				remaining: remaining[i],
				index:     i,
			})
		}

		allocs := allocateDay(scored, settings.DailyBudgetMinutes)
		if len(allocs) == 0 {
			continue
		}
		entries = append(entries, buildDay(date, startOfDay, allocs, settings)...)

		for _, a := range allocs {
			remaining[a.index] -= a.minutes
			left -= a.minutes
		}
		p.logger.Debug("day scheduled", "date", date.Format("2006-01-02"), "subjects", len(allocs))
	}

	sched := &model.Schedule{Entries: entries}
	for i, sub := range subjects {
		if remaining[i] > 0 {
			sched.Overflow = append(sched.Overflow, model.Overflow{Subject: sub.Name, RemainingMinutes: remaining[i]})
		}
	}
	sched.Summary = model.ComputeSummary(entries)

	p.logger.Debug("schedule generated",
		"days", sched.Summary.Days,
		"sessions", sched.Summary.Sessions,
		"study_minutes", sched.Summary.StudyMinutes,
		"overflow_subjects", len(sched.Overflow))
	return sched, nil
}

func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// dayStartOffset returns the day-start clock as an offset past midnight.
// Settings are validated before this runs, so the parse cannot fail.
func dayStartOffset(settings model.ScheduleSettings) time.Duration {
	hour, minute, err := settings.DayStartClock()
	if err != nil {
		return 0
	}
	return time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute
}
