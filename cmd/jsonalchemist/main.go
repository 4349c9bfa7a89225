// Command jsonalchemist formats, validates and repairs near-JSON from files
// or stdin.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, newRootCmd(os.Stdin, os.Stdout, os.Stderr))
	stop()
	os.Exit(code)
}
