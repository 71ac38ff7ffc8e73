// Package signals gives cmd/hornlog a context.Context that is cancelled on
// SIGINT/SIGTERM, so a long or non-terminating resolution (a left-recursive
// program per spec.md §9's accepted non-termination) can be interrupted
// with Ctrl-C instead of only killed outright.
package signals

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

var (
	signalCtx context.Context
	cancel    context.CancelFunc
	once      sync.Once
)

// Context returns a Context cancelled on the first SIGINT/SIGTERM. A second
// signal terminates the process immediately with exit code 1, matching the
// usual double-Ctrl-C escape hatch for a command that isn't responding to
// the first one.
func Context() context.Context {
	once.Do(func() {
		c := make(chan os.Signal, 2)
		signal.Notify(c, shutdownSignals...)
		signalCtx, cancel = context.WithCancel(context.Background())
		go func() {
			<-c
			cancel()
			<-c
			os.Exit(1)
		}()
	})
	return signalCtx
}
