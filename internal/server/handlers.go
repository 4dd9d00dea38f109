package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/festmap/suggest/internal/models"
	"github.com/festmap/suggest/pkg/utils"
)

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req models.SuggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.logger.Debug("suggest request", zap.String("query", utils.Truncate(req.Query, 64)), zap.String("user_id", req.UserID))

	start := time.Now()

	var historyRecords []models.HistoryRecord
	if req.UserID != "" && s.history != nil {
		records, err := s.history.List(r.Context(), req.UserID)
		if err != nil {
			// History is a bonus source; the request still succeeds without it.
			s.logger.Warn("history unavailable for request", zap.Error(err))
		} else {
			historyRecords = records
		}
	}

	var placeResults []models.PlaceResult
	if req.IncludePlaces && s.searcher != nil && utf8.RuneCountInString(strings.TrimSpace(req.Query)) >= 2 {
		results, err := s.searcher.Search(r.Context(), req.Query)
		if err != nil {
			s.logger.Debug("place lookup degraded to empty", zap.Error(err))
		} else {
			placeResults = results
		}
	}

	engine := s.rankingEngine()
	suggestions := engine.aggregator.GenerateSuggestions(req.Query, s.Events(), historyRecords, placeResults)
	grouped := engine.grouper.Group(suggestions)
	intent := engine.detector.Detect(req.Query)

	if suggestions == nil {
		suggestions = []models.Suggestion{}
	}
	s.respondJSON(w, http.StatusOK, models.SuggestResponse{
		Query:       req.Query,
		Suggestions: suggestions,
		Grouped:     grouped,
		Intent:      intent.String(),
		QueryTime:   time.Since(start).Milliseconds(),
	})
}

func (s *Server) handleReplaceEvents(w http.ResponseWriter, r *http.Request) {
	var events []models.Event
	if err := json.NewDecoder(r.Body).Decode(&events); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.SetEvents(events)
	s.logger.Debug("event snapshot replaced", zap.Int("count", len(events)))
	s.respondJSON(w, http.StatusOK, map[string]int{"count": len(events)})
}

type historySelectRequest struct {
	UserID string `json:"user_id"`
	Term   string `json:"term"`
	Type   string `json:"type"`
}

func (s *Server) handleHistorySelect(w http.ResponseWriter, r *http.Request) {
	var req historySelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" || req.Term == "" {
		s.respondError(w, http.StatusBadRequest, "user_id and term are required")
		return
	}
	if err := s.history.RecordSelection(r.Context(), req.UserID, req.Term, req.Type); err != nil {
		s.logger.Error("history selection failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusCreated, map[string]string{"status": "recorded"})
}

func (s *Server) handleHistoryList(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		s.respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}
	records, err := s.history.List(r.Context(), userID)
	if err != nil {
		s.logger.Error("history list failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if records == nil {
		records = []models.HistoryRecord{}
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"history": records})
}

func (s *Server) handleHistoryDelete(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	term := r.URL.Query().Get("term")
	if userID == "" || term == "" {
		var body historySelectRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			if userID == "" {
				userID = body.UserID
			}
			if term == "" {
				term = body.Term
			}
		}
	}
	if userID == "" || term == "" {
		s.respondError(w, http.StatusBadRequest, "user_id and term are required (query or body)")
		return
	}
	s.logger.Debug("history delete request", zap.String("user_id", userID), zap.String("term", term))
	if err := s.history.Delete(r.Context(), userID, term); err != nil {
		s.logger.Error("history delete failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
