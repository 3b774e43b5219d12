// Package http provides HTTP handlers for snapshot synchronization.
package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okoshkina/fittrack/internal/middleware"
	"github.com/okoshkina/fittrack/internal/models"
)

// SyncService defines the interface for synchronization operations
// required by the SyncHandler.
type SyncService interface {
	// Sync reconciles the client snapshot against the stored one and
	// returns the winning snapshot.
	Sync(ctx context.Context, login string, snap models.Snapshot, lastKnownVersion int64) (models.Snapshot, error)
	// Snapshot returns the stored snapshot for the user, nil if none.
	Snapshot(ctx context.Context, login string) (*models.Snapshot, error)
}

// SyncHandler handles HTTP requests for snapshot synchronization.
type SyncHandler struct {
	SyncService SyncService
}

// Sync handles POST /api/sync requests.
// It decodes a JSON body with "snapshot" and "last_known_version",
// invokes the SyncService, and writes the reconciled snapshot as JSON.
func (h *SyncHandler) Sync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	login := middleware.GetUserIDFromContext(ctx)

	var req struct {
		Snapshot         models.Snapshot `json:"snapshot"`
		LastKnownVersion int64           `json:"last_known_version"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	result, err := h.SyncService.Sync(ctx, login, req.Snapshot, req.LastKnownVersion)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"snapshot": result,
		"version":  result.Version,
	})
}

// Snapshot handles GET /api/snapshot requests, returning the stored
// snapshot for the authenticated user or 404 if none exists yet.
func (h *SyncHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	login := middleware.GetUserIDFromContext(ctx)

	snap, err := h.SyncService.Snapshot(ctx, login)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if snap == nil {
		http.Error(w, "no snapshot", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(snap)
}
