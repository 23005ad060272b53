package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/aussiebroadwan/taskboard/internal/taskctl"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := taskctl.Main(ctx, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if !errors.Is(err, taskctl.ErrUsage) {
			fmt.Fprintf(os.Stderr, "taskctl: %v\n", err)
		}
		os.Exit(1)
	}
}
