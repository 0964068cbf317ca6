package server

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/alexanderramin/advisor/internal/contract"
	"github.com/alexanderramin/advisor/internal/domain"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type catalogResponse struct {
	Version   string                `json:"version"`
	Electives []domain.CatalogEntry `json:"electives"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	req := contract.NewRecommendRequest(r.URL.Query().Get("name"))

	resp, err := s.advisor.Recommend(r.Context(), req)
	if err != nil {
		var recErr *contract.RecommendError
		if errors.As(err, &recErr) {
			s.respondJSON(w, http.StatusBadRequest, errorResponse{Error: string(recErr.Code), Message: recErr.Message})
			return
		}
		s.logger.Error().Err(err).Str("request_id", getRequestID(r.Context())).Msg("recommendation failed")
		s.respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "INTERNAL", Message: "recommendation failed"})
		return
	}

	status := http.StatusOK
	if !resp.Found() {
		status = http.StatusNotFound
	}
	s.respondJSON(w, status, resp)
}

func (s *Server) handleCatalog(w http.ResponseWriter, _ *http.Request) {
	cat := s.advisor.Catalog()
	s.respondJSON(w, http.StatusOK, catalogResponse{Version: cat.Version(), Electives: cat.Entries()})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		s.logger.Error().Err(err).Msg("encoding JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		s.logger.Error().Err(err).Msg("writing JSON response")
	}
}
