// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/okian/levelgate/internal/domain/types"
)

// LevelsDependencies defines the interface for level-listing reads.
type LevelsDependencies interface {
	Levels(ctx context.Context, page int) (types.LevelList, error)
}

// LevelsHandler handles level-listing requests.
type LevelsHandler struct {
	deps    LevelsDependencies
	maxPage int
}

// NewLevelsHandler creates a new levels handler.
func NewLevelsHandler(deps LevelsDependencies, maxPage int) *LevelsHandler {
	return &LevelsHandler{
		deps:    deps,
		maxPage: maxPage,
	}
}

// HandleGetLevels handles GET /levels?page=N requests. The page parameter is
// optional and defaults to the first page.
func (h *LevelsHandler) HandleGetLevels(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_levels"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	page := 0
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		n, err := strconv.Atoi(pageStr)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		page = n
	}
	if page > h.maxPage {
		writeError(w, http.StatusBadRequest, "page_exceeded", NewKind(op, ErrBadRequest))
		return
	}
	list, err := h.deps.Levels(r.Context(), page)
	if err != nil {
		writeError(w, http.StatusBadGateway, "upstream_failed", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, list)
}
