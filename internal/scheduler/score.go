package scheduler

import (
	"sort"
	"time"

	"github.com/Aanishnithin07/Schedulyze/pkg/model"
)

// OverdueUrgency is the urgency assigned to subjects whose deadline is today
// or already past. It dominates every future-deadline urgency, which is at
// most 1.
const OverdueUrgency = 10.0

// Weights blends the three priority signals. The canonical blend sums to 1;
// the scorer does not normalize.
type Weights struct {
	Urgency    float64
	Difficulty float64
	Importance float64
}

// DefaultWeights returns the canonical blend: urgency dominates, difficulty
// and importance share the rest evenly.
func DefaultWeights() Weights {
	return Weights{Urgency: 0.4, Difficulty: 0.3, Importance: 0.3}
}

// Scorer computes a subject's priority for a given day. A score is a pure
// function of (subject, date): higher means schedule sooner. A Scorer is
// safe for concurrent use.
type Scorer struct {
	Weights       Weights
	DifficultyMax int
	ImportanceMax int
}

// DefaultScorer returns a Scorer with DefaultWeights on a 1..5 rating scale.
func DefaultScorer() Scorer {
	return Scorer{Weights: DefaultWeights(), DifficultyMax: 5, ImportanceMax: 5}
}

// Score computes the priority of sub as of today. Urgency decays as
// 1/daysLeft and saturates at OverdueUrgency once the deadline is reached;
// difficulty and importance contribute their fraction of the rating scale.
func (sc Scorer) Score(sub model.Subject, today time.Time) float64 {
	urgency := sc.urgency(daysBetween(today, sub.Deadline))
	difficulty := float64(sub.Difficulty) / float64(sc.DifficultyMax)
	importance := float64(sub.EffectiveImportance()) / float64(sc.ImportanceMax)
	return sc.Weights.Urgency*urgency + sc.Weights.Difficulty*difficulty + sc.Weights.Importance*importance
}

func (sc Scorer) urgency(daysLeft int) float64 {
	if daysLeft <= 0 {
		return OverdueUrgency
	}
	return 1 / float64(daysLeft)
}

// ScoreBreakdown itemizes the signals behind one subject's priority.
type ScoreBreakdown struct {
	Rank     int       `json:"rank"`
	Subject  string    `json:"subject"`
	Deadline time.Time `json:"deadline"`
	DaysLeft int       `json:"days_left"`
	Urgency  float64   `json:"urgency"`
	Score    float64   `json:"score"`
	Share    float64   `json:"share"`
}

// Rank scores every subject as of today and returns breakdowns sorted by
// score descending, stable on ties, ranked from 1. Share is each score's
// fraction of the day's total.
func (sc Scorer) Rank(subjects []model.Subject, today time.Time) []ScoreBreakdown {
	out := make([]ScoreBreakdown, len(subjects))
	var total float64
	for i, sub := range subjects {
		daysLeft := daysBetween(today, sub.Deadline)
		score := sc.Score(sub, today)
		out[i] = ScoreBreakdown{
			Subject:  sub.Name,
			Deadline: sub.Deadline,
			DaysLeft: daysLeft,
			Urgency:  sc.urgency(daysLeft),
			Score:    score,
		}
		total += score
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	for i := range out {
		out[i].Rank = i + 1
		if total > 0 {
			out[i].Share = out[i].Score / total
		}
	}
	return out
}

// daysBetween returns the whole calendar days from a to b, ignoring the
// time-of-day of either.
func daysBetween(a, b time.Time) int {
	a = midnightUTC(a)
	b = midnightUTC(b)
	return int(b.Sub(a).Hours() / 24)
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
