package scheduler

import (
	"math"
	"sort"

	"github.com/Aanishnithin07/Schedulyze/pkg/model"
)

// scoredSubject pairs a subject with its priority for one day and the study
// minutes it still needs. index refers back to the caller's subject slice.
type scoredSubject struct {
	subject   model.Subject
	score     float64
	remaining int
	index     int
}

// allocation is one subject's share of a single day.
type allocation struct {
	subject model.Subject
	score   float64
	minutes int
	index   int
}

// allocateDay splits budgetMinutes across the scored subjects in proportion
// to their scores. Subjects are stable-sorted by score descending; every
// subject but the last is granted round(share * budget) minutes, and the
// last absorbs whatever budget remains unallocated so rounding drift never
// loses minutes. Each grant is capped at the subject's remaining need and at
// the still-unallocated budget. Subjects whose grant comes out zero are
// omitted from the result.
func allocateDay(scored []scoredSubject, budgetMinutes int) []allocation {
	if len(scored) == 0 || budgetMinutes <= 0 {
		return nil
	}

	ordered := make([]scoredSubject, len(scored))
	copy(ordered, scored)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].score > ordered[j].score })

	var totalScore float64
	for _, s := range ordered {
		totalScore += s.score
	}
	if totalScore == 0 {
		return nil
	}

	allocs := make([]allocation, 0, len(ordered))
	unallocated := budgetMinutes
	for i, s := range ordered {
		grant := int(math.Round(s.score / totalScore * float64(budgetMinutes)))
		if i == len(ordered)-1 {
			grant = unallocated
		}
		if grant > s.remaining {
			grant = s.remaining
		}
		if grant > unallocated {
			grant = unallocated
		}
		if grant <= 0 {
			continue
		}
		allocs = append(allocs, allocation{subject: s.subject, score: s.score, minutes: grant, index: s.index})
		unallocated -= grant
	}
	return allocs
}
