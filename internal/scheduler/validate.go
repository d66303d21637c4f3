package scheduler

import (
	"fmt"

	"github.com/Aanishnithin07/Schedulyze/pkg/model"
)

// Validator performs semantic validation on scheduling inputs before the
// horizon loop runs. All failures within a category are collected so callers
// see every problem at once.
type Validator struct {
	difficultyMax int
	importanceMax int
}

// NewValidator creates a Validator enforcing the scorer's rating scales.
func NewValidator(scorer Scorer) *Validator {
	return &Validator{difficultyMax: scorer.DifficultyMax, importanceMax: scorer.ImportanceMax}
}

// Validate checks settings first, then subjects. Returns nil if valid, or a
// *model.Error carrying INVALID_SETTINGS or INVALID_SUBJECT field details.
func (v *Validator) Validate(subjects []model.Subject, settings model.ScheduleSettings) *model.Error {
	if errs := v.ValidateSettings(settings); len(errs) > 0 {
		return model.NewInvalidSettingsError(errs...)
	}
	if errs := v.ValidateSubjects(subjects); len(errs) > 0 {
		return model.NewInvalidSubjectError(errs...)
	}
	return nil
}

// ValidateSettings checks block lengths, the daily budget, the day-start
// clock, and the horizon bound.
func (v *Validator) ValidateSettings(s model.ScheduleSettings) []model.FieldError {
	var errs []model.FieldError
	if s.SessionMinutes <= 0 {
		errs = append(errs, model.FieldError{Field: "session_minutes", Message: "must be positive"})
	}
	if s.DailyBudgetMinutes <= 0 {
		errs = append(errs, model.FieldError{Field: "daily_budget_minutes", Message: "must be positive"})
	}
	if s.SessionMinutes > 0 && s.DailyBudgetMinutes > 0 && s.SessionMinutes > s.DailyBudgetMinutes {
		errs = append(errs, model.FieldError{
			Field:   "session_minutes",
			Message: fmt.Sprintf("session length %d exceeds daily budget %d", s.SessionMinutes, s.DailyBudgetMinutes),
		})
	}
	if s.BreakMinutes < 0 {
		errs = append(errs, model.FieldError{Field: "break_minutes", Message: "must not be negative"})
	}
	if s.HorizonDays <= 0 {
		errs = append(errs, model.FieldError{Field: "horizon_days", Message: "must be positive"})
	} else if s.HorizonDays > MaxHorizonDays {
		errs = append(errs, model.FieldError{
			Field:   "horizon_days",
			Message: fmt.Sprintf("must not exceed %d", MaxHorizonDays),
		})
	}
	if _, _, err := s.DayStartClock(); err != nil {
		errs = append(errs, model.FieldError{
			Field:   "day_start",
			Message: fmt.Sprintf("%q is not a valid HH:MM clock time", s.DayStart),
		})
	}
	return errs
}

// ValidateSubjects checks each subject's fields and name uniqueness.
func (v *Validator) ValidateSubjects(subjects []model.Subject) []model.FieldError {
	var errs []model.FieldError
	seen := make(map[string]bool, len(subjects))
	for i, sub := range subjects {
		field := func(name string) string { return fmt.Sprintf("subjects[%d].%s", i, name) }

		if sub.Name == "" {
			errs = append(errs, model.FieldError{Field: field("name"), Message: "name is required"})
		} else if seen[sub.Name] {
			errs = append(errs, model.FieldError{
				Field:   field("name"),
				Message: fmt.Sprintf("duplicate subject name %q", sub.Name),
			})
		}
		seen[sub.Name] = true

		if sub.Deadline.IsZero() {
			errs = append(errs, model.FieldError{Field: field("deadline"), Message: "deadline is required"})
		}
		if sub.HoursNeeded <= 0 {
			errs = append(errs, model.FieldError{Field: field("hours_needed"), Message: "must be positive"})
		}
		if sub.Difficulty < 1 || sub.Difficulty > v.difficultyMax {
			errs = append(errs, model.FieldError{
				Field:   field("difficulty"),
				Message: fmt.Sprintf("must be between 1 and %d", v.difficultyMax),
			})
		}
		if sub.Importance != 0 && (sub.Importance < 1 || sub.Importance > v.importanceMax) {
			errs = append(errs, model.FieldError{
				Field:   field("importance"),
				Message: fmt.Sprintf("must be between 1 and %d", v.importanceMax),
			})
		}
	}
	return errs
}
