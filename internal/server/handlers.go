package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gisusafaris/faq-bot/apimodels"
)

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req apimodels.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apimodels.ErrorResponse{Error: fmt.Sprintf("Invalid request: %v", err)})
		return
	}

	slog.Debug("Received ask request", "question", req.Question, "historyLen", len(req.History))

	resp := s.answerer.Ask(r.Context(), req)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, apimodels.HealthResponse{
		Status: "ok",
		Model:  s.answerer.ModelName(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
