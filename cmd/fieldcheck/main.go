// Command fieldcheck lists the built-in field types and checks values
// against the fields of a schema document.
//
//	fieldcheck types
//	fieldcheck validate -s form.yaml price=12.5 email=ada@example.com
//
// Defaults are read from FORMKIT_ prefixed environment variables, optionally
// loaded from --env-file, and flags override them.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
