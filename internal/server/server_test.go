package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Aanishnithin07/Schedulyze/internal/config"
	"github.com/Aanishnithin07/Schedulyze/pkg/model"
)

// Monday. Fixed so schedules generated without a start_date stay stable.
var testNow = time.Date(2026, time.January, 5, 12, 0, 0, 0, time.UTC)

func testServer() *Server {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
	return New(config.DefaultServerConfig(), logger, WithClock(func() time.Time { return testNow }))
}

// envelope is used to decode the standard response envelope.
type envelope struct {
	Status    string          `json:"status"`
	RequestID string          `json:"request_id"`
	Timestamp string          `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
	Error     *model.Error    `json:"error"`
}

func doGet(t *testing.T, srv *Server, path string) envelope {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET %s: status=%d, want 200, body=%s", path, w.Code, w.Body.String())
	}
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("GET %s: invalid JSON: %v", path, err)
	}
	return env
}

func doPost(t *testing.T, srv *Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid JSON response: %v, body=%s", err, w.Body.String())
	}
	return env
}

const mathPlan = `{
	"start_date": "2026-01-05",
	"settings": {"daily_budget_minutes": 480},
	"subjects": [
		{"name": "Math", "deadline": "2026-01-07", "hours_needed": 2, "difficulty": 3}
	]
}`

func TestDiscovery(t *testing.T) {
	srv := testServer()
	env := doGet(t, srv, "/api/v1/")
	if env.Status != "ok" {
		t.Errorf("status = %q, want ok", env.Status)
	}
	if env.RequestID == "" {
		t.Error("request_id is empty")
	}

	var data struct {
		Name      string `json:"name"`
		Endpoints []struct {
			Path string `json:"path"`
		} `json:"endpoints"`
	}
	json.Unmarshal(env.Data, &data)
	if data.Name != "Schedulyze API" {
		t.Errorf("name = %q, want Schedulyze API", data.Name)
	}
	if len(data.Endpoints) < 4 {
		t.Errorf("endpoints count = %d, want >= 4", len(data.Endpoints))
	}
}

func TestHealth(t *testing.T) {
	srv := testServer()
	env := doGet(t, srv, "/api/v1/health")

	var data struct {
		Status    string `json:"status"`
		Version   string `json:"version"`
		GoVersion string `json:"go_version"`
	}
	json.Unmarshal(env.Data, &data)
	if data.Status != "healthy" {
		t.Errorf("health status = %q, want healthy", data.Status)
	}
	if data.Version != "0.1.0" {
		t.Errorf("version = %q, want 0.1.0", data.Version)
	}
}

func TestRequestIDHeader(t *testing.T) {
	srv := testServer()
	req := httptest.NewRequest("GET", "/api/v1/health", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	id := w.Header().Get("X-Request-ID")
	if !strings.HasPrefix(id, "req_") {
		t.Errorf("X-Request-ID = %q, want req_ prefix", id)
	}
}

func TestCreateSchedule(t *testing.T) {
	srv := testServer()
	w := doPost(t, srv, "/api/v1/schedule", mathPlan)

	if w.Code != http.StatusOK {
		t.Fatalf("POST /schedule: status=%d, want 200, body=%s", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if env.Status != "ok" {
		t.Fatalf("status = %q, want ok", env.Status)
	}

	var sched model.Schedule
	if err := json.Unmarshal(env.Data, &sched); err != nil {
		t.Fatalf("decode schedule: %v", err)
	}
	// 2 hours at 90-minute sessions: study, break, study.
	if len(sched.Entries) != 3 {
		t.Fatalf("entry count = %d, want 3", len(sched.Entries))
	}
	if sched.Entries[0].Subject != "Math" || sched.Entries[0].Kind != model.EntryStudy {
		t.Errorf("first entry = %s/%s, want Math study", sched.Entries[0].Subject, sched.Entries[0].Kind)
	}
	if sched.Summary.StudyMinutes != 120 {
		t.Errorf("study minutes = %d, want 120", sched.Summary.StudyMinutes)
	}
	if len(sched.Overflow) != 0 {
		t.Errorf("overflow = %+v, want none", sched.Overflow)
	}
}

func TestCreateSchedule_DefaultStartDateUsesClock(t *testing.T) {
	srv := testServer()
	body := `{"subjects":[{"name":"Math","deadline":"2026-01-07","hours_needed":1,"difficulty":3}]}`
	w := doPost(t, srv, "/api/v1/schedule", body)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200, body=%s", w.Code, w.Body.String())
	}
	var sched model.Schedule
	json.Unmarshal(decodeEnvelope(t, w).Data, &sched)
	if len(sched.Entries) == 0 {
		t.Fatal("no entries generated")
	}

	want := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	if !sched.Entries[0].Date.Equal(want) {
		t.Errorf("first date = %v, want clock date %v", sched.Entries[0].Date, want)
	}
}

func TestCreateSchedule_InvalidSettings(t *testing.T) {
	srv := testServer()
	body := `{
		"settings": {"session_minutes": -5},
		"subjects": [{"name":"Math","deadline":"2026-01-07","hours_needed":1,"difficulty":3}]
	}`
	w := doPost(t, srv, "/api/v1/schedule", body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400, body=%s", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if env.Error == nil || env.Error.Code != model.ErrInvalidSettings {
		t.Errorf("error = %+v, want code %s", env.Error, model.ErrInvalidSettings)
	}
}

func TestCreateSchedule_SessionExceedsBudget(t *testing.T) {
	srv := testServer()
	body := `{
		"settings": {"session_minutes": 120, "daily_budget_minutes": 60},
		"subjects": [{"name":"Math","deadline":"2026-01-07","hours_needed":1,"difficulty":3}]
	}`
	w := doPost(t, srv, "/api/v1/schedule", body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400, body=%s", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if env.Error == nil || env.Error.Code != model.ErrInvalidSettings {
		t.Errorf("error = %+v, want code %s", env.Error, model.ErrInvalidSettings)
	}
}

func TestCreateSchedule_InvalidSubjectField(t *testing.T) {
	srv := testServer()
	body := `{"subjects": [{"name":"Math","deadline":"2026-01-07","hours_needed":1}]}`
	w := doPost(t, srv, "/api/v1/schedule", body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400, body=%s", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if env.Error == nil || env.Error.Code != model.ErrInvalidSubject {
		t.Fatalf("error = %+v, want code %s", env.Error, model.ErrInvalidSubject)
	}
	if len(env.Error.Details) != 1 || env.Error.Details[0].Field != "subjects[0].difficulty" {
		t.Errorf("details = %+v, want one error on subjects[0].difficulty", env.Error.Details)
	}
}

func TestCreateSchedule_BadDeadlineFormat(t *testing.T) {
	srv := testServer()
	body := `{"subjects": [{"name":"Math","deadline":"Jan 7","hours_needed":1,"difficulty":3}]}`
	w := doPost(t, srv, "/api/v1/schedule", body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400, body=%s", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if env.Error == nil || env.Error.Code != model.ErrInvalidSubject {
		t.Errorf("error = %+v, want code %s", env.Error, model.ErrInvalidSubject)
	}
}

func TestCreateSchedule_MalformedJSON(t *testing.T) {
	srv := testServer()
	w := doPost(t, srv, "/api/v1/schedule", `{"subjects": [`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400, body=%s", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if env.Error == nil || env.Error.Code != model.ErrValidation {
		t.Errorf("error = %+v, want code %s", env.Error, model.ErrValidation)
	}
}

func TestExportSchedule_ICS(t *testing.T) {
	srv := testServer()
	w := doPost(t, srv, "/api/v1/schedule/export?format=ics", mathPlan)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200, body=%s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/calendar" {
		t.Errorf("Content-Type = %q, want text/calendar", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "schedulyze_study_plan_2026-01-05.ics") {
		t.Errorf("Content-Disposition = %q, want ics filename", cd)
	}
	body := w.Body.String()
	if !strings.Contains(body, "BEGIN:VCALENDAR") || !strings.Contains(body, "SUMMARY:Study: Math") {
		t.Errorf("unexpected ICS body:\n%s", body)
	}
}

func TestExportSchedule_CSV(t *testing.T) {
	srv := testServer()
	w := doPost(t, srv, "/api/v1/schedule/export?format=csv", mathPlan)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200, body=%s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("Content-Type = %q, want text/csv", ct)
	}
	body := w.Body.String()
	if !strings.HasPrefix(body, "Subject,Start Date,Start Time,End Date,End Time,Description") {
		t.Errorf("unexpected CSV header:\n%s", body)
	}
	if !strings.Contains(body, "Math - Study Session") {
		t.Errorf("CSV body missing study row:\n%s", body)
	}
}

func TestExportSchedule_DefaultsToICS(t *testing.T) {
	srv := testServer()
	w := doPost(t, srv, "/api/v1/schedule/export", mathPlan)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200, body=%s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/calendar" {
		t.Errorf("Content-Type = %q, want text/calendar", ct)
	}
}

func TestExportSchedule_UnknownFormat(t *testing.T) {
	srv := testServer()
	w := doPost(t, srv, "/api/v1/schedule/export?format=pdf", mathPlan)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400, body=%s", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if env.Error == nil || env.Error.Code != model.ErrValidation {
		t.Errorf("error = %+v, want code %s", env.Error, model.ErrValidation)
	}
}

func TestScores(t *testing.T) {
	srv := testServer()
	body := `{
		"start_date": "2026-01-05",
		"subjects": [
			{"name": "Relaxed", "deadline": "2026-02-20", "hours_needed": 2, "difficulty": 1},
			{"name": "Urgent", "deadline": "2026-01-06", "hours_needed": 2, "difficulty": 5}
		]
	}`
	w := doPost(t, srv, "/api/v1/scores", body)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200, body=%s", w.Code, w.Body.String())
	}
	var data struct {
		GeneratedFor string `json:"generated_for"`
		Scores       []struct {
			Rank    int     `json:"rank"`
			Subject string  `json:"subject"`
			Score   float64 `json:"score"`
		} `json:"scores"`
	}
	json.Unmarshal(decodeEnvelope(t, w).Data, &data)

	if data.GeneratedFor != "2026-01-05" {
		t.Errorf("generated_for = %q, want 2026-01-05", data.GeneratedFor)
	}
	if len(data.Scores) != 2 {
		t.Fatalf("score count = %d, want 2", len(data.Scores))
	}
	if data.Scores[0].Subject != "Urgent" || data.Scores[0].Rank != 1 {
		t.Errorf("top score = %+v, want Urgent at rank 1", data.Scores[0])
	}
	if data.Scores[0].Score <= data.Scores[1].Score {
		t.Errorf("scores not descending: %v then %v", data.Scores[0].Score, data.Scores[1].Score)
	}
}

func TestScores_RejectsOutOfScaleRating(t *testing.T) {
	srv := testServer()
	body := `{"subjects": [{"name":"Math","deadline":"2026-01-07","hours_needed":1,"difficulty":9}]}`
	w := doPost(t, srv, "/api/v1/scores", body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400, body=%s", w.Code, w.Body.String())
	}
	env := decodeEnvelope(t, w)
	if env.Error == nil || env.Error.Code != model.ErrInvalidSubject {
		t.Errorf("error = %+v, want code %s", env.Error, model.ErrInvalidSubject)
	}
}
