package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Bet-Zero/BetTracker-sub001/pkg/models"
	"github.com/go-chi/chi/v5"
)

// GetCatalogVersion returns the current catalog version
func (h *Handler) GetCatalogVersion(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"version": h.catalog.Version(),
	})
}

// ListCatalog returns all entities of one kind
func (h *Handler) ListCatalog(w http.ResponseWriter, r *http.Request) {
	kind, ok := parseKind(chi.URLParam(r, "kind"))
	if !ok {
		respondError(w, http.StatusBadRequest, "unknown entity kind", nil)
		return
	}

	entities := h.catalog.List(kind)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"kind":     kind,
		"entities": entities,
		"count":    len(entities),
		"version":  h.catalog.Version(),
	})
}

// AddCatalogEntity creates a new canonical entity
func (h *Handler) AddCatalogEntity(w http.ResponseWriter, r *http.Request) {
	kind, ok := parseKind(chi.URLParam(r, "kind"))
	if !ok {
		respondError(w, http.StatusBadRequest, "unknown entity kind", nil)
		return
	}

	var entity models.CanonicalEntity
	if err := json.NewDecoder(r.Body).Decode(&entity); err != nil {
		respondError(w, http.StatusBadRequest, "invalid entity JSON", err)
		return
	}

	if err := h.catalog.Add(kind, entity); err != nil {
		respondError(w, http.StatusConflict, err.Error(), nil)
		return
	}

	h.persistEntity(r.Context(), kind, entity.Canonical, entity.Sport)

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"kind":    kind,
		"entity":  entity.Canonical,
		"version": h.catalog.Version(),
	})
}

// UpdateCatalogEntity replaces an entity's record
func (h *Handler) UpdateCatalogEntity(w http.ResponseWriter, r *http.Request) {
	kind, ok := parseKind(chi.URLParam(r, "kind"))
	if !ok {
		respondError(w, http.StatusBadRequest, "unknown entity kind", nil)
		return
	}

	var entity models.CanonicalEntity
	if err := json.NewDecoder(r.Body).Decode(&entity); err != nil {
		respondError(w, http.StatusBadRequest, "invalid entity JSON", err)
		return
	}
	entity.Canonical = chi.URLParam(r, "canonical")

	if err := h.catalog.Update(kind, entity); err != nil {
		respondError(w, http.StatusNotFound, err.Error(), nil)
		return
	}

	h.persistEntity(r.Context(), kind, entity.Canonical, entity.Sport)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"kind":    kind,
		"entity":  entity.Canonical,
		"version": h.catalog.Version(),
	})
}

// DeleteCatalogEntity removes an entity
func (h *Handler) DeleteCatalogEntity(w http.ResponseWriter, r *http.Request) {
	kind, ok := parseKind(chi.URLParam(r, "kind"))
	if !ok {
		respondError(w, http.StatusBadRequest, "unknown entity kind", nil)
		return
	}

	canonical := chi.URLParam(r, "canonical")
	sport := r.URL.Query().Get("sport")

	if err := h.catalog.Remove(kind, canonical, sport); err != nil {
		respondError(w, http.StatusNotFound, err.Error(), nil)
		return
	}

	if h.catStore != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		if err := h.catStore.Delete(ctx, kind, canonical, sport); err != nil {
			fmt.Printf("⚠️  Failed to delete %s %q from storage: %v\n", kind, canonical, err)
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"kind":    kind,
		"entity":  canonical,
		"version": h.catalog.Version(),
	})
}

// AddCatalogAliases merges new aliases into an entity
func (h *Handler) AddCatalogAliases(w http.ResponseWriter, r *http.Request) {
	kind, ok := parseKind(chi.URLParam(r, "kind"))
	if !ok {
		respondError(w, http.StatusBadRequest, "unknown entity kind", nil)
		return
	}

	canonical := chi.URLParam(r, "canonical")

	var body struct {
		Sport   string   `json:"sport"`
		Aliases []string `json:"aliases"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid alias JSON", err)
		return
	}

	if err := h.catalog.AddAliases(kind, canonical, body.Sport, body.Aliases); err != nil {
		respondError(w, http.StatusNotFound, err.Error(), nil)
		return
	}

	h.persistEntity(r.Context(), kind, canonical, body.Sport)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"kind":    kind,
		"entity":  canonical,
		"version": h.catalog.Version(),
	})
}

// SetCatalogDisabled flips an entity's disabled flag
func (h *Handler) SetCatalogDisabled(w http.ResponseWriter, r *http.Request) {
	kind, ok := parseKind(chi.URLParam(r, "kind"))
	if !ok {
		respondError(w, http.StatusBadRequest, "unknown entity kind", nil)
		return
	}

	canonical := chi.URLParam(r, "canonical")

	var body struct {
		Sport    string `json:"sport"`
		Disabled bool   `json:"disabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON", err)
		return
	}

	if err := h.catalog.SetDisabled(kind, canonical, body.Sport, body.Disabled); err != nil {
		respondError(w, http.StatusNotFound, err.Error(), nil)
		return
	}

	h.persistEntity(r.Context(), kind, canonical, body.Sport)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"kind":     kind,
		"entity":   canonical,
		"disabled": body.Disabled,
		"version":  h.catalog.Version(),
	})
}

// ResolveEntity resolves one raw string against the current catalog snapshot
func (h *Handler) ResolveEntity(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Kind  string `json:"kind"`
		Raw   string `json:"raw"`
		Sport string `json:"sport"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON", err)
		return
	}

	kind, ok := parseKind(body.Kind)
	if !ok {
		respondError(w, http.StatusBadRequest, "unknown entity kind", nil)
		return
	}

	resolution := h.resolver.ResolveKind(h.catalog.Snapshot(), kind, body.Raw, body.Sport)
	respondJSON(w, http.StatusOK, resolution)
}

// persistEntity writes one entity's current in-memory state through to
// storage. Storage failures are logged, not surfaced; the in-memory catalog
// already moved and a restart reload will lag at worst.
func (h *Handler) persistEntity(ctx context.Context, kind models.EntityKind, canonical, sport string) {
	if h.catStore == nil {
		return
	}

	for _, e := range h.catalog.List(kind) {
		if e.Canonical == canonical && e.Sport == sport {
			wctx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			if err := h.catStore.Upsert(wctx, kind, e); err != nil {
				fmt.Printf("⚠️  Failed to persist %s %q: %v\n", kind, canonical, err)
			}
			return
		}
	}
}

// parseKind maps a URL/body kind string to an EntityKind
func parseKind(s string) (models.EntityKind, bool) {
	switch s {
	case "teams", "team":
		return models.KindTeam, true
	case "players", "player":
		return models.KindPlayer, true
	case "stattypes", "stattype", "stat-types":
		return models.KindStatType, true
	}
	return "", false
}
