// Package levels decodes the legacy paginated level-listing payload into
// typed entries. Decoding is pure and total: malformed fields fall back and
// malformed records are dropped, never surfaced as errors.
package levels

import (
	"strings"

	"github.com/okian/levelgate/internal/domain/coerce"
	"github.com/okian/levelgate/internal/domain/types"
	"github.com/okian/levelgate/internal/domain/wire"
)

// Wire format constants for the level-listing payload.
const (
	recordMarker = "levelId="
	pageFlagKey  = "moreLevels"

	keyID         = "levelId"
	keyAuthor     = "levelAuthor"
	keyRating     = "levelRating"
	keyDifficulty = "levelDifficulty"
	keyDownloads  = "levelDownloads"
	keyTopTimes   = "levelTopTimes"
)

// record is the typed view of one tokenized level record. Building it once at
// the tokenizer boundary keeps the rest of the decoder off the raw field map.
type record struct {
	id         string
	author     string
	rating     string
	difficulty string
	downloads  string
	topTimes   string
}

func newRecord(f wire.Fields) record {
	return record{
		id:         f.Get(keyID),
		author:     f.Get(keyAuthor),
		rating:     f.Get(keyRating),
		difficulty: f.Get(keyDifficulty),
		downloads:  f.Get(keyDownloads),
		topTimes:   f.Get(keyTopTimes),
	}
}

// Decode parses a raw level-listing body. Records whose decoded id is empty
// after trimming are discarded silently; everything else is kept in wire
// order. The HasMore flag comes from the document-level pagination marker.
func Decode(raw string) types.LevelList {
	tok := wire.New(recordMarker, wire.WithPageFlagKey(pageFlagKey))
	records, hasMore := tok.Tokenize(raw)

	out := types.LevelList{
		Entries: []types.LevelEntry{},
		HasMore: hasMore,
	}
	for _, f := range records {
		r := newRecord(f)

		id := coerce.DecodeTextSafely(r.id)
		if strings.TrimSpace(id) == "" {
			continue
		}

		entry := types.LevelEntry{
			ID:     id,
			Author: coerce.DecodeTextSafely(r.author),
			// Empty difficulty is a legitimate "unset" state, kept verbatim.
			Difficulty: r.difficulty,
			// Top times stay opaque; parsing them is the caller's concern.
			TopTimesRaw: r.topTimes,
		}
		if v, ok := coerce.ParseOptionalNumber(r.rating); ok {
			entry.Rating = &v
		}
		if v, ok := coerce.ParseOptionalNumber(r.downloads); ok {
			entry.Downloads = &v
		}
		out.Entries = append(out.Entries, entry)
	}

	return out
}
