// Package types contains common types used across the application
package types

// LevelEntry is one decoded row of the legacy level-listing payload.
// Rating and Downloads are nil when the wire field was absent or unparseable;
// the decoder never coerces a bad number to zero.
type LevelEntry struct {
	ID          string   `json:"level_id"`
	Author      string   `json:"author"`
	Rating      *float64 `json:"rating,omitempty"`
	Difficulty  string   `json:"difficulty"`
	Downloads   *float64 `json:"downloads,omitempty"`
	TopTimesRaw string   `json:"top_times_raw"`
}

// LevelList is a decoded level-listing page. Entry order mirrors the wire
// body; HasMore reports the document-level pagination marker.
type LevelList struct {
	Entries []LevelEntry `json:"entries"`
	HasMore bool         `json:"has_more"`
}

// HofRow is one ranked hall-of-fame row. Rank is the rendered ordinal
// ("1st", "2nd", ...) after competition ranking, not a raw position.
type HofRow struct {
	Rank   string `json:"rank"`
	Player string `json:"player"`
	Score  int    `json:"score"`
}
