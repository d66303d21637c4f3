package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Aanishnithin07/Schedulyze/pkg/model"
)

// respondOK writes a success response with the standard envelope.
func respondOK(w http.ResponseWriter, reqID string, data any) {
	respondJSON(w, http.StatusOK, reqID, data, nil)
}

// respondError writes an error response with the standard envelope. The
// HTTP status follows the error code: validation failures are 400s and
// everything else is a 500.
func respondError(w http.ResponseWriter, reqID string, apiErr *model.Error) {
	respondJSON(w, errorStatus(apiErr.Code), reqID, nil, apiErr)
}

func errorStatus(code model.ErrorCode) int {
	switch code {
	case model.ErrInvalidSubject, model.ErrInvalidSettings, model.ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondJSON(w http.ResponseWriter, status int, reqID string, data any, apiErr *model.Error) {
	resp := model.Response{
		RequestID: reqID,
		Timestamp: time.Now().UTC(),
		Data:      data,
		Error:     apiErr,
	}
	if apiErr != nil {
		resp.Status = "error"
	} else {
		resp.Status = "ok"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
