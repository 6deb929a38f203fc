// Command relief tracks affected areas and answers route queries over a
// road network. See `relief --help`.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prabhat888/DSA-LAB-SHEETS-2301010316/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
