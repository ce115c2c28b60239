package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/levelgate/internal/upstreamsim"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := upstreamsim.Run(ctx, os.Args[1:]); err != nil {
		os.Stderr.WriteString("mock upstream failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
