// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/levelgate/internal/domain/types"
)

// HallOfFameDependencies defines the interface for hall-of-fame reads.
type HallOfFameDependencies interface {
	HallOfFame(ctx context.Context) ([]types.HofRow, error)
}

// HallOfFameHandler handles hall-of-fame requests.
type HallOfFameHandler struct {
	deps HallOfFameDependencies
}

// NewHallOfFameHandler creates a new hall-of-fame handler.
func NewHallOfFameHandler(deps HallOfFameDependencies) *HallOfFameHandler {
	return &HallOfFameHandler{deps: deps}
}

// HandleGetHallOfFame handles GET /halloffame requests.
func (h *HallOfFameHandler) HandleGetHallOfFame(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_halloffame"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	rows, err := h.deps.HallOfFame(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, "upstream_failed", Wrap(op, err))
		return
	}
	if rows == nil {
		rows = []types.HofRow{}
	}
	writeJSON(w, http.StatusOK, rows)
}
