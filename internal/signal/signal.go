// Package signal implements the handling of termination signals.
package signal

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/favonia/cloudflare-zonesync/internal/pp"
)

// A Catcher encapsulates a channel for masked signals.
type Catcher struct {
	channel chan os.Signal
}

// Signals contains the signals to mask and catch.
//
//nolint:gochecknoglobals
var Signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

// Setup masks signals in [Signals] and returns the catcher.
func Setup() Catcher {
	chanSignal := make(chan os.Signal, len(Signals))
	signal.Notify(chanSignal, Signals...)

	return Catcher{channel: chanSignal}
}

// NotifyContext gives a copy of the context that will be canceled by signals in [Signals].
func NotifyContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, Signals...)
}

// TearDown undoes what Setup does. This is only for testing.
func (c Catcher) TearDown() {
	signal.Stop(c.channel)
}

// Sleep waits for a period of time. It returns false if it is interrupted by signals in [Signals].
func (c Catcher) Sleep(ppfmt pp.PP, d time.Duration) bool {
	chanAlarm := time.After(d)
	for {
		select {
		case sig := <-c.channel:
			ppfmt.Noticef(pp.EmojiSignal, "Caught signal: %v", sig)
			return false
		case <-chanAlarm:
			return true
		}
	}
}
