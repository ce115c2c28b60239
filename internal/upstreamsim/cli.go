package upstreamsim

import (
	"context"
	"flag"
	"fmt"

	"github.com/okian/levelgate/pkg/logger"
)

// Run parses flags and serves the simulated upstream until ctx is cancelled.
func Run(ctx context.Context, args []string) error {
	cfg := NewConfig()

	fs := flag.NewFlagSet("mock-upstream", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	fs.IntVar(&cfg.Pages, "pages", cfg.Pages, "number of level pages to serve")
	fs.IntVar(&cfg.LevelsPerPage, "levels", cfg.LevelsPerPage, "level records per page")
	fs.IntVar(&cfg.HofRows, "hof", cfg.HofRows, "hall-of-fame rows to serve")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	if err := logger.Init(); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	return NewServer(cfg).ListenAndServe(ctx)
}
