// Package hof decodes the legacy hall-of-fame payload into ranked rows.
//
// The wire stream is comma separated with an irregular two-token header:
// token 0 is a bare base64 player name, token 1 is "<score>/<trailing>" where
// only the part before the slash is used as token 0's score. The trailing
// segment is discarded without ever becoming a name. That asymmetry is an
// observed property of the upstream protocol and is reproduced here verbatim;
// compatibility tests against a live server should keep an eye on it.
package hof

import (
	"sort"
	"strconv"
	"strings"

	"github.com/okian/levelgate/internal/domain/coerce"
	"github.com/okian/levelgate/internal/domain/types"
)

const (
	tokenSep = ","
	pairSep  = "/"
)

// pair is a surviving (player, score) tuple before ranking.
type pair struct {
	player string
	score  int
}

// Decode parses a raw hall-of-fame body into rows sorted by score descending
// and annotated with competition ranks. Malformed pairs are dropped one by
// one; fewer than two tokens yields an empty result. Decode never fails.
func Decode(raw string) []types.HofRow {
	tokens := strings.Split(raw, tokenSep)
	if len(tokens) < 2 {
		return []types.HofRow{}
	}

	pairs := make([]pair, 0, len(tokens)-1)

	// Header: token 0 carries the first player's name, token 1 its score.
	if p, ok := headerPair(tokens[0], tokens[1]); ok {
		pairs = append(pairs, p)
	}

	// Uniform "<score>/<base64-name>" pairs from token 2 onward.
	for _, token := range tokens[2:] {
		scorePart, namePart, found := strings.Cut(token, pairSep)
		if !found {
			continue
		}
		if p, ok := makePair(namePart, scorePart); ok {
			pairs = append(pairs, p)
		}
	}

	return rank(pairs)
}

// headerPair assembles the irregular first pair. The segment after the slash
// in scoreToken is deliberately ignored.
func headerPair(nameToken, scoreToken string) (pair, bool) {
	scorePart, _, _ := strings.Cut(scoreToken, pairSep)
	return makePair(nameToken, scorePart)
}

// makePair decodes a base64 name and parses an integer score, rejecting the
// pair when either side is unusable.
func makePair(encodedName, rawScore string) (pair, bool) {
	score, err := strconv.Atoi(strings.TrimSpace(rawScore))
	if err != nil {
		return pair{}, false
	}
	name := coerce.DecodeTextSafely(encodedName)
	if strings.TrimSpace(name) == "" {
		return pair{}, false
	}
	return pair{player: name, score: score}, true
}

// rank sorts pairs by score descending (stable, so equal scores keep their
// derived order) and assigns standard competition ranks: rows in an
// equal-score group share the position of the group's first row.
func rank(pairs []pair) []types.HofRow {
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].score > pairs[j].score
	})

	rows := make([]types.HofRow, 0, len(pairs))
	position := 0
	for i, p := range pairs {
		if i == 0 || p.score != pairs[i-1].score {
			position = i + 1
		}
		rows = append(rows, types.HofRow{
			Rank:   Ordinal(position),
			Player: p.player,
			Score:  p.score,
		})
	}
	return rows
}

// Ordinal renders n as an English ordinal: 11, 12 and 13 modulo 100 take
// "th"; otherwise the last digit picks "st", "nd", "rd" or "th".
func Ordinal(n int) string {
	suffix := "th"
	if m := n % 100; m < 11 || m > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}
