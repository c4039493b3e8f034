package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Bet-Zero/BetTracker-sub001/internal/db"
	"github.com/Bet-Zero/BetTracker-sub001/pkg/models"
	"github.com/go-chi/chi/v5"
)

// ImportBet runs one scraped bet through the full import pipeline
func (h *Handler) ImportBet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var bet models.Bet
	if err := json.NewDecoder(r.Body).Decode(&bet); err != nil {
		respondError(w, http.StatusBadRequest, "invalid bet JSON", err)
		return
	}

	result, err := h.processor.Process(ctx, bet, "api")
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to import bet", err)
		return
	}

	if !result.Stored {
		// Contract violations come back as 422 with the full report so the
		// scraper team can see exactly what failed
		respondJSON(w, http.StatusUnprocessableEntity, result)
		return
	}

	respondJSON(w, http.StatusCreated, result)
}

// ValidateBet runs the contract check without importing
func (h *Handler) ValidateBet(w http.ResponseWriter, r *http.Request) {
	var bet models.Bet
	if err := json.NewDecoder(r.Body).Decode(&bet); err != nil {
		respondError(w, http.StatusBadRequest, "invalid bet JSON", err)
		return
	}

	respondJSON(w, http.StatusOK, h.processor.Validate(bet))
}

// GetRows retrieves flattened rows with optional filtering
// Query params: book, sport, result, category, since, until, limit, offset
func (h *Handler) GetRows(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	limit := parseIntParam(r, "limit", 100)
	if limit > 500 {
		limit = 500
	}

	filters := db.RowFilters{
		Book:     r.URL.Query().Get("book"),
		Sport:    r.URL.Query().Get("sport"),
		Result:   r.URL.Query().Get("result"),
		Category: r.URL.Query().Get("category"),
		Since:    parseTimeParam(r, "since"),
		Until:    parseTimeParam(r, "until"),
		Limit:    limit,
		Offset:   parseIntParam(r, "offset", 0),
	}

	rows, err := h.store.GetRows(ctx, filters)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to retrieve rows", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"rows":   rows,
		"count":  len(rows),
		"limit":  filters.Limit,
		"offset": filters.Offset,
	})
}

// GetRowsByBet retrieves one ticket's rows
func (h *Handler) GetRowsByBet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	betID := chi.URLParam(r, "betID")

	rows, err := h.store.GetRowsByBet(ctx, betID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to retrieve bet rows", err)
		return
	}

	if len(rows) == 0 {
		respondError(w, http.StatusNotFound, "bet not found", nil)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"bet_id": betID,
		"rows":   rows,
		"count":  len(rows),
	})
}

// GetSummary returns aggregate staked/net across all stored rows
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	summary, err := h.store.GetSummary(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to compute summary", err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}
