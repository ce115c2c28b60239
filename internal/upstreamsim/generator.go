// Package upstreamsim generates the legacy game-server text formats and
// serves them over HTTP, so the gateway can be exercised without a real
// upstream.
package upstreamsim

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Player name pool for generated documents.
var playerNames = []string{
	"ada", "bela", "cleo", "dana", "edda", "finn", "gwen", "hugo",
	"iris", "jona", "kira", "liam", "mira", "nico", "otto", "pia",
}

// randomInt returns a random int in [0, max) using crypto/rand.
func randomInt(max int) int {
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(max)))
	return int(n.Int64())
}

func randomName() string {
	return playerNames[randomInt(len(playerNames))]
}

func encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// GenerateLevelPage builds one page of the level-listing wire format. Each
// record starts with the record marker; fields are key=value pairs joined
// with the field separator. Pages before the last carry the pagination flag.
func GenerateLevelPage(page int, cfg *Config) string {
	records := make([]string, 0, cfg.LevelsPerPage+1)
	for i := 0; i < cfg.LevelsPerPage; i++ {
		records = append(records, generateLevelRecord())
	}
	if page < cfg.Pages-1 {
		records = append(records, pageFlagField)
	}
	return strings.Join(records, fieldSeparator)
}

func generateLevelRecord() string {
	rating := float64(randomInt(int(ratingMax*10))) / 10
	downloads := randomInt(downloadsMax)

	times := make([]string, 0, topTimesLen)
	for i := 0; i < topTimesLen; i++ {
		times = append(times, strconv.Itoa(10000+randomInt(90000)))
	}

	fields := []string{
		recordMarker + encode(uuid.New().String()),
		"levelAuthor=" + encode(randomName()),
		"levelRating=" + strconv.FormatFloat(rating, 'f', 1, 64),
		"levelDifficulty=" + []string{"easy", "normal", "hard"}[randomInt(3)],
		"levelDownloads=" + strconv.Itoa(downloads),
		"levelTopTimes=" + strings.Join(times, ":"),
	}
	return strings.Join(fields, fieldSeparator)
}

// GenerateHallOfFame builds the hall-of-fame wire format. The header is
// irregular: the first token is a bare encoded name, the second is that
// player's score with a discardable tail. Every later token is
// score/encoded-name.
func GenerateHallOfFame(cfg *Config) string {
	if cfg.HofRows <= 0 {
		return ""
	}

	tokens := make([]string, 0, cfg.HofRows+1)
	tokens = append(tokens, encode(randomName()))
	tokens = append(tokens, fmt.Sprintf("%d%sextra", randomInt(scoreMax), hofPairSeparator))
	for i := 1; i < cfg.HofRows; i++ {
		tokens = append(tokens, fmt.Sprintf("%d%s%s", randomInt(scoreMax), hofPairSeparator, encode(randomName())))
	}
	return strings.Join(tokens, hofTokenSeparator)
}
