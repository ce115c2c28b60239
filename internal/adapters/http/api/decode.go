// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"io"
	"net/http"

	"github.com/okian/levelgate/internal/domain/types"
)

// Decoder defines the pure decode operations exposed over HTTP.
type Decoder interface {
	DecodeLevels(raw string) types.LevelList
	DecodeHallOfFame(raw string) []types.HofRow
}

// DecodeHandler decodes caller-supplied wire payloads without touching the
// upstream or the cache.
type DecodeHandler struct {
	decoder      Decoder
	maxBodyBytes int64
}

// NewDecodeHandler creates a new decode handler.
func NewDecodeHandler(decoder Decoder, maxBodyBytes int64) *DecodeHandler {
	return &DecodeHandler{
		decoder:      decoder,
		maxBodyBytes: maxBodyBytes,
	}
}

// HandleDecodeLevels handles POST /decode/levels requests. The request body
// is the raw level-listing payload.
func (h *DecodeHandler) HandleDecodeLevels(w http.ResponseWriter, r *http.Request) {
	const op = "api.decode_levels"
	raw, ok := h.readBody(w, r, op)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.decoder.DecodeLevels(raw))
}

// HandleDecodeHallOfFame handles POST /decode/halloffame requests. The
// request body is the raw hall-of-fame payload.
func (h *DecodeHandler) HandleDecodeHallOfFame(w http.ResponseWriter, r *http.Request) {
	const op = "api.decode_halloffame"
	raw, ok := h.readBody(w, r, op)
	if !ok {
		return
	}
	rows := h.decoder.DecodeHallOfFame(raw)
	if rows == nil {
		rows = []types.HofRow{}
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *DecodeHandler) readBody(w http.ResponseWriter, r *http.Request, op string) (string, bool) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return "", false
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "body_too_large", NewKind(op, ErrBadRequest))
		return "", false
	}
	return string(body), true
}
