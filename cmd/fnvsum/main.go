package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Blackdeer1524/fnvhash/src/app"
)

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	e := app.Entrypoint{}
	if err := e.Init(ctx); err != nil {
		log.Fatal(err)
	}

	runErr := e.Run(ctx)

	if err := e.Close(); err != nil {
		log.Printf("close: %v", err)
	}

	if runErr != nil {
		// Already reported by cobra.
		os.Exit(1)
	}
}
