// Package planfile defines the plan document format shared by the CLI and
// the HTTP API: schedule settings, an optional start date, and the subject
// list. Documents carry string calendar dates and optional settings; Resolve
// converts them into typed engine inputs, applying the product defaults.
package planfile

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Aanishnithin07/Schedulyze/pkg/model"
)

// DateLayout is the calendar-date form used throughout plan documents.
const DateLayout = "2006-01-02"

// SubjectSpec is one subject as written in a plan document. The validate
// tags cover document shape; rating-scale semantics belong to the engine.
type SubjectSpec struct {
	Name        string  `yaml:"name" json:"name" validate:"required"`
	Deadline    string  `yaml:"deadline" json:"deadline" validate:"required,datetime=2006-01-02"`
	HoursNeeded float64 `yaml:"hours_needed" json:"hours_needed" validate:"required,gt=0"`
	Difficulty  int     `yaml:"difficulty" json:"difficulty" validate:"required,min=1"`
	Importance  int     `yaml:"importance,omitempty" json:"importance,omitempty" validate:"omitempty,min=1"`
}

// SettingsSpec mirrors model.ScheduleSettings with every field optional;
// nil fields fall back to the product defaults.
type SettingsSpec struct {
	SessionMinutes     *int    `yaml:"session_minutes" json:"session_minutes" validate:"omitempty,gt=0"`
	BreakMinutes       *int    `yaml:"break_minutes" json:"break_minutes" validate:"omitempty,gte=0"`
	DailyBudgetMinutes *int    `yaml:"daily_budget_minutes" json:"daily_budget_minutes" validate:"omitempty,gt=0"`
	DayStart           *string `yaml:"day_start" json:"day_start" validate:"omitempty,datetime=15:04"`
	IncludeWeekends    *bool   `yaml:"include_weekends" json:"include_weekends"`
	HorizonDays        *int    `yaml:"horizon_days" json:"horizon_days" validate:"omitempty,gt=0"`
}

// Document is a complete plan request.
type Document struct {
	Settings  *SettingsSpec `yaml:"settings" json:"settings"`
	StartDate string        `yaml:"start_date" json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	Subjects  []SubjectSpec `yaml:"subjects" json:"subjects" validate:"dive"`
}

// Plan is a resolved document: typed inputs ready for the engine. StartDate
// is zero when the document does not pin one; callers substitute today.
type Plan struct {
	Subjects  []model.Subject
	Settings  model.ScheduleSettings
	StartDate time.Time
}

// Load reads and parses a YAML plan document from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan file: %w", err)
	}
	return Parse(data)
}

// Parse parses a YAML plan document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("YAML parse error: %w", err)
	}
	return &doc, nil
}

// Resolve converts the document into engine inputs. Omitted settings take
// the defaults from model.DefaultSettings. Date conversion failures carry
// the same error codes the engine's own validation uses, so callers see one
// taxonomy regardless of where a field fails.
func (d *Document) Resolve() (*Plan, error) {
	plan := &Plan{Settings: resolveSettings(d.Settings)}

	if d.StartDate != "" {
		start, err := time.Parse(DateLayout, d.StartDate)
		if err != nil {
			return nil, model.NewValidationError("invalid start_date",
				model.FieldError{Field: "start_date", Message: fmt.Sprintf("%q must be a %s date", d.StartDate, DateLayout)})
		}
		plan.StartDate = start
	}

	var errs []model.FieldError
	plan.Subjects = make([]model.Subject, 0, len(d.Subjects))
	for i, spec := range d.Subjects {
		sub := model.Subject{
			Name:        spec.Name,
			HoursNeeded: spec.HoursNeeded,
			Difficulty:  spec.Difficulty,
			Importance:  spec.Importance,
		}
		switch {
		case spec.Deadline == "":
			errs = append(errs, model.FieldError{
				Field:   fmt.Sprintf("subjects[%d].deadline", i),
				Message: "deadline is required",
			})
		default:
			deadline, err := time.Parse(DateLayout, spec.Deadline)
			if err != nil {
				errs = append(errs, model.FieldError{
					Field:   fmt.Sprintf("subjects[%d].deadline", i),
					Message: fmt.Sprintf("%q must be a %s date", spec.Deadline, DateLayout),
				})
				break
			}
			sub.Deadline = deadline
		}
		plan.Subjects = append(plan.Subjects, sub)
	}
	if len(errs) > 0 {
		return nil, model.NewInvalidSubjectError(errs...)
	}
	return plan, nil
}

func resolveSettings(spec *SettingsSpec) model.ScheduleSettings {
	settings := model.DefaultSettings()
	if spec == nil {
		return settings
	}
	if spec.SessionMinutes != nil {
		settings.SessionMinutes = *spec.SessionMinutes
	}
	if spec.BreakMinutes != nil {
		settings.BreakMinutes = *spec.BreakMinutes
	}
	if spec.DailyBudgetMinutes != nil {
		settings.DailyBudgetMinutes = *spec.DailyBudgetMinutes
	}
	if spec.DayStart != nil {
		settings.DayStart = *spec.DayStart
	}
	if spec.IncludeWeekends != nil {
		settings.IncludeWeekends = *spec.IncludeWeekends
	}
	if spec.HorizonDays != nil {
		settings.HorizonDays = *spec.HorizonDays
	}
	return settings
}
