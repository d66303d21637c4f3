package scheduler

import (
	"time"

	"github.com/Aanishnithin07/Schedulyze/pkg/model"
)

// dayBlock is one study block cut from an allocation, not yet timestamped.
type dayBlock struct {
	alloc   allocation
	minutes int
}

// buildDay turns one day's allocations into timestamped entries starting at
// startOfDay past midnight of date. Allocations are consumed in the order
// given, preserving the priority order from allocateDay; each subject is cut
// into consecutive blocks of at most settings.SessionMinutes, and a break
// follows every study block except the last study block of the entire day.
func buildDay(date time.Time, startOfDay time.Duration, allocs []allocation, settings model.ScheduleSettings) []model.ScheduleEntry {
	// Cut all study blocks first so the final block of the day is known
	// without lookahead across subjects.
	var blocks []dayBlock
	for _, a := range allocs {
		for left := a.minutes; left > 0; {
			n := settings.SessionMinutes
			if n > left {
				n = left
			}
			blocks = append(blocks, dayBlock{alloc: a, minutes: n})
			left -= n
		}
	}

	clock := date.Add(startOfDay)
	entries := make([]model.ScheduleEntry, 0, 2*len(blocks))
	for i, b := range blocks {
		end := clock.Add(time.Duration(b.minutes) * time.Minute)
		entries = append(entries, model.ScheduleEntry{
			Date:            date,
			Start:           clock,
			End:             end,
			Subject:         b.alloc.subject.Name,
			Kind:            model.EntryStudy,
			DurationMinutes: b.minutes,
			PriorityScore:   b.alloc.score,
			Difficulty:      b.alloc.subject.Difficulty,
		})
		clock = end

		if i < len(blocks)-1 && settings.BreakMinutes > 0 {
			end = clock.Add(time.Duration(settings.BreakMinutes) * time.Minute)
			entries = append(entries, model.ScheduleEntry{
				Date:            date,
				Start:           clock,
				End:             end,
				Subject:         model.BreakSubject,
				Kind:            model.EntryBreak,
				DurationMinutes: settings.BreakMinutes,
			})
			clock = end
		}
	}
	return entries
}
