package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Aanishnithin07/Schedulyze/internal/export"
	"github.com/Aanishnithin07/Schedulyze/internal/planfile"
	"github.com/Aanishnithin07/Schedulyze/pkg/model"
)

func (s *Server) handleCreateSchedule(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	doc, apiErr := s.decodeDocument(w, r)
	if apiErr != nil {
		respondError(w, reqID, apiErr)
		return
	}

	schedule, _, apiErr := s.generateSchedule(doc)
	if apiErr != nil {
		respondError(w, reqID, apiErr)
		return
	}
	respondOK(w, reqID, schedule)
}

func (s *Server) handleExportSchedule(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	format := r.URL.Query().Get("format")
	if format == "" {
		format = export.FormatICS
	}
	contentType := export.ContentType(format)
	if contentType == "" {
		respondError(w, reqID, model.NewValidationError(
			fmt.Sprintf("unsupported export format %q", format),
			model.FieldError{Field: "format", Message: "must be ics or csv"}))
		return
	}

	doc, apiErr := s.decodeDocument(w, r)
	if apiErr != nil {
		respondError(w, reqID, apiErr)
		return
	}

	schedule, start, apiErr := s.generateSchedule(doc)
	if apiErr != nil {
		respondError(w, reqID, apiErr)
		return
	}

	var body []byte
	switch format {
	case export.FormatICS:
		body = export.ICS(schedule)
	case export.FormatCSV:
		var err error
		body, err = export.CSV(schedule)
		if err != nil {
			respondError(w, reqID, s.asAPIError(err))
			return
		}
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(format, start)))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// generateSchedule resolves a document and runs the planner. The resolved
// start date is returned for export file naming.
func (s *Server) generateSchedule(doc *planfile.Document) (*model.Schedule, time.Time, *model.Error) {
	plan, err := doc.Resolve()
	if err != nil {
		return nil, time.Time{}, s.asAPIError(err)
	}

	start := plan.StartDate
	if start.IsZero() {
		start = s.now()
	}

	schedule, err := s.planner.Generate(plan.Subjects, plan.Settings, start)
	if err != nil {
		return nil, time.Time{}, s.asAPIError(err)
	}
	return schedule, start, nil
}

// asAPIError unwraps engine errors for the response envelope. Anything that
// is not a *model.Error is logged and reported as INTERNAL_ERROR.
func (s *Server) asAPIError(err error) *model.Error {
	var apiErr *model.Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	s.logger.Error("schedule generation failed", "error", err)
	return model.NewInternalError("schedule generation failed")
}
