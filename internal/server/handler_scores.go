package server

import (
	"net/http"

	"github.com/Aanishnithin07/Schedulyze/internal/planfile"
	"github.com/Aanishnithin07/Schedulyze/internal/scheduler"
	"github.com/Aanishnithin07/Schedulyze/pkg/model"
)

type scoresResponse struct {
	GeneratedFor string                     `json:"generated_for"`
	Scores       []scheduler.ScoreBreakdown `json:"scores"`
}

// handleScores ranks the posted subjects by priority without building a
// schedule. Settings in the body are accepted but only subjects matter here.
func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	doc, apiErr := s.decodeDocument(w, r)
	if apiErr != nil {
		respondError(w, reqID, apiErr)
		return
	}

	plan, err := doc.Resolve()
	if err != nil {
		respondError(w, reqID, s.asAPIError(err))
		return
	}
	if errs := s.checker.ValidateSubjects(plan.Subjects); len(errs) > 0 {
		respondError(w, reqID, model.NewInvalidSubjectError(errs...))
		return
	}

	today := plan.StartDate
	if today.IsZero() {
		today = s.now()
	}

	respondOK(w, reqID, scoresResponse{
		GeneratedFor: today.Format(planfile.DateLayout),
		Scores:       s.scorer.Rank(plan.Subjects, today),
	})
}
