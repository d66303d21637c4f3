// Package export renders generated schedules into interchange formats:
// an iCalendar feed and a Google Calendar CSV import file.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/Aanishnithin07/Schedulyze/pkg/model"
)

// Format names accepted by the exporters and the export endpoint.
const (
	FormatICS = "ics"
	FormatCSV = "csv"
)

const (
	icsProductID  = "-//Schedulyze//Study Scheduler//EN"
	csvDateLayout = "01/02/2006"
	csvTimeLayout = "15:04"
)

// ContentType returns the MIME type served for a format, or "" when the
// format is unknown.
func ContentType(format string) string {
	switch format {
	case FormatICS:
		return "text/calendar"
	case FormatCSV:
		return "text/csv"
	default:
		return ""
	}
}

// FileName returns the advertised download name for a format, stamped with
// the given day.
func FileName(format string, day time.Time) string {
	return fmt.Sprintf("schedulyze_study_plan_%s.%s", day.Format("2006-01-02"), format)
}

// ICS renders the schedule as an iCalendar feed. Break entries are included
// so an imported calendar keeps the full day shape.
func ICS(schedule *model.Schedule) []byte {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icsProductID)

	stamp := time.Now().UTC()
	for _, entry := range schedule.Entries {
		event := cal.AddEvent(uuid.NewString() + "@schedulyze")
		event.SetDtStampTime(stamp)
		event.SetStartAt(entry.Start)
		event.SetEndAt(entry.End)
		if entry.IsBreak() {
			event.SetSummary(model.BreakSubject)
			event.SetDescription(fmt.Sprintf("Break time - %d minutes", entry.DurationMinutes))
			continue
		}
		event.SetSummary("Study: " + entry.Subject)
		event.SetDescription(eventDescription(entry))
	}
	return []byte(cal.Serialize())
}

// CSV renders the schedule as a Google Calendar import file. Only study
// entries are exported; breaks stay local to the plan.
func CSV(schedule *model.Schedule) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Subject", "Start Date", "Start Time", "End Date", "End Time", "Description"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write CSV header: %w", err)
	}
	for _, entry := range schedule.Entries {
		if entry.IsBreak() {
			continue
		}
		record := []string{
			entry.Subject + " - Study Session",
			entry.Start.Format(csvDateLayout),
			entry.Start.Format(csvTimeLayout),
			entry.End.Format(csvDateLayout),
			entry.End.Format(csvTimeLayout),
			studyDescription(entry),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write CSV record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// eventDescription renders the calendar event body for a study block,
// including the ratings behind its placement.
func eventDescription(entry model.ScheduleEntry) string {
	return fmt.Sprintf("Subject: %s\nDuration: %d minutes\nDifficulty: %d/5\nPriority Score: %.1f",
		entry.Subject, entry.DurationMinutes, entry.Difficulty, entry.PriorityScore)
}

func studyDescription(entry model.ScheduleEntry) string {
	return fmt.Sprintf("Study session for %s (%d minutes)", entry.Subject, entry.DurationMinutes)
}
