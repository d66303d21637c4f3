package server

import "net/http"

type endpointInfo struct {
	Path        string   `json:"path"`
	Methods     []string `json:"methods"`
	Description string   `json:"description"`
}

type discoveryResponse struct {
	Name        string         `json:"name"`
	Version     string         `json:"version"`
	Description string         `json:"description"`
	Endpoints   []endpointInfo `json:"endpoints"`
}

func (s *Server) handleDiscovery(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	respondOK(w, reqID, discoveryResponse{
		Name:        "Schedulyze API",
		Version:     "v1",
		Description: "Schedulyze Study Scheduler — priority scoring, daily time allocation, and multi-day study plans",
		Endpoints: []endpointInfo{
			{"/api/v1/schedule", []string{"POST"}, "Generate a day-by-day study schedule from subjects and settings"},
			{"/api/v1/schedule/export", []string{"POST"}, "Generate a schedule and download it as a calendar file (?format=ics or ?format=csv)"},
			{"/api/v1/scores", []string{"POST"}, "Rank subjects by priority score without building a schedule"},
			{"/api/v1/health", []string{"GET"}, "Server health and version"},
		},
	})
}
