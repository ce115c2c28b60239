// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/levelgate/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Cache-through reads against the upstream.
	Levels(ctx context.Context, page int) (types.LevelList, error)
	HallOfFame(ctx context.Context) ([]types.HofRow, error)

	// Pure decoders over caller-supplied payloads.
	DecodeLevels(raw string) types.LevelList
	DecodeHallOfFame(raw string) []types.HofRow
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	levelsHandler     *LevelsHandler
	hallOfFameHandler *HallOfFameHandler
	decodeHandler     *DecodeHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxPage int, maxBodyBytes int64) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		levelsHandler:     NewLevelsHandler(deps, maxPage),
		hallOfFameHandler: NewHallOfFameHandler(deps),
		decodeHandler:     NewDecodeHandler(deps, maxBodyBytes),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/levels", MetricsMiddleware(s.levelsHandler.HandleGetLevels, "levels"))
	mux.HandleFunc("/halloffame", MetricsMiddleware(s.hallOfFameHandler.HandleGetHallOfFame, "halloffame"))
	mux.HandleFunc("/decode/levels", MetricsMiddleware(s.decodeHandler.HandleDecodeLevels, "decode_levels"))
	mux.HandleFunc("/decode/halloffame", MetricsMiddleware(s.decodeHandler.HandleDecodeHallOfFame, "decode_halloffame"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
