package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Bet-Zero/BetTracker-sub001/internal/catalog"
	"github.com/Bet-Zero/BetTracker-sub001/internal/db"
	"github.com/Bet-Zero/BetTracker-sub001/internal/hub"
	"github.com/Bet-Zero/BetTracker-sub001/internal/processor"
	"github.com/Bet-Zero/BetTracker-sub001/internal/resolve"
	"github.com/Bet-Zero/BetTracker-sub001/pkg/models"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	store     db.Store
	catalog   *catalog.Catalog
	catStore  *catalog.Store
	resolver  *resolve.Resolver
	processor *processor.Processor
	hub       *hub.Hub
	ctx       context.Context
}

// NewHandler creates a new handler with dependencies. catStore may be nil
// when catalog persistence is disabled (tests).
func NewHandler(
	store db.Store,
	cat *catalog.Catalog,
	catStore *catalog.Store,
	resolver *resolve.Resolver,
	proc *processor.Processor,
	h *hub.Hub,
	ctx context.Context,
) *Handler {
	return &Handler{
		store:     store,
		catalog:   cat,
		catStore:  catStore,
		resolver:  resolver,
		processor: proc,
		hub:       h,
		ctx:       ctx,
	}
}

// HealthCheck returns the health status of the service
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		respondError(w, http.StatusServiceUnavailable, "database unhealthy", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":          "healthy",
		"timestamp":       time.Now().UTC(),
		"service":         "bet-tracker",
		"catalog_version": h.catalog.Version(),
	})
}

// GetServiceMetrics returns pipeline and hub metrics
func (h *Handler) GetServiceMetrics(w http.ResponseWriter, r *http.Request) {
	processed, rejected, errors := h.processor.GetMetrics()

	metrics := map[string]interface{}{
		"processed": processed,
		"rejected":  rejected,
		"errors":    errors,
	}

	if h.hub != nil {
		metrics["hub"] = h.hub.GetMetrics()
	}

	respondJSON(w, http.StatusOK, metrics)
}

func parseIntParam(r *http.Request, param string, defaultValue int) int {
	valueStr := r.URL.Query().Get(param)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func parseTimeParam(r *http.Request, param string) *time.Time {
	valueStr := r.URL.Query().Get(param)
	if valueStr == "" {
		return nil
	}

	t, err := time.Parse(time.RFC3339, valueStr)
	if err != nil {
		return nil
	}

	return &t
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		fmt.Printf("error encoding response: %v\n", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errResp := models.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	}

	if err != nil {
		fmt.Printf("handler error (%d): %s: %v\n", status, message, err)
	}

	if encErr := json.NewEncoder(w).Encode(errResp); encErr != nil {
		fmt.Printf("error encoding error response: %v\n", encErr)
	}
}
