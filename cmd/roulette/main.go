package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/doeshing/roulette-go/internal/infrastructure/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := cli.Options{
		Verbose:   isTruthy(os.Getenv("ROULETTE_DEBUG")),
		Ephemeral: isTruthy(os.Getenv("ROULETTE_EPHEMERAL")),
	}

	root := cli.NewRootCmd(opts)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

func isTruthy(v string) bool {
	return strings.EqualFold(v, "1") || strings.EqualFold(v, "true")
}
