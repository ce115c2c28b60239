// Package repository caches decoded upstream documents so repeated reads do
// not re-fetch the legacy proxy. Entries expire after a TTL; the decoders
// themselves stay stateless.
package repository

import (
	"context"

	"github.com/okian/levelgate/internal/domain/types"
)

// Store provides read/write access to cached decode results.
type Store interface {
	// LevelPage returns the cached decode of a level page, if fresh.
	LevelPage(ctx context.Context, page int) (types.LevelList, bool)

	// PutLevelPage caches the decoded level page.
	PutLevelPage(ctx context.Context, page int, list types.LevelList)

	// HallOfFame returns the cached hall-of-fame rows, if fresh.
	HallOfFame(ctx context.Context) ([]types.HofRow, bool)

	// PutHallOfFame caches the decoded hall-of-fame rows.
	PutHallOfFame(ctx context.Context, rows []types.HofRow)

	// Count returns the number of fresh level pages currently cached.
	Count(ctx context.Context) int
}
