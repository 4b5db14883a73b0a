// Command busctl is a small demonstration harness for the bus package:
// it wires up one topic, one sync service, and one action, then drives
// them from a single cooperative loop until interrupted. It exists to
// exercise the public API end to end, not as a production tool; the
// registry it builds lives entirely in this process.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/microdds/microdds/bus"
	"github.com/microdds/microdds/cli"
	"github.com/microdds/microdds/env"
	"github.com/microdds/microdds/patterns/retry"
	"github.com/microdds/microdds/signalx"
	"github.com/microdds/microdds/slogx"
	"github.com/microdds/microdds/syncx"
)

// newLogger picks a handler shape based on whether stderr is an actual
// terminal: a human reading a live session gets short text lines, a
// redirected/piped invocation gets machine-parseable JSON.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if env.Bool("MICRODDS_VERBOSE", false) {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	var primary slog.Handler
	if term.IsTerminal(int(os.Stderr.Fd())) {
		primary = slog.NewTextHandler(os.Stderr, opts)
	} else {
		primary = slog.NewJSONHandler(os.Stderr, opts)
	}
	audit := slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug})
	handler := slogx.NewDedupeHandler(slogx.MergeHandlers(primary, audit))
	return slog.New(handler)
}

func main() {
	set := cli.NewCommandSet("busctl")
	if set.RespondUsage("a demo harness for the microdds bus") {
		return
	}

	demo := set.AddCommand("demo", "publish, call, and run one goal to completion", "d").
		Usage("demo [--ticks N] [--interval DURATION]")
	demo.Flags().IntP("ticks", "t", 20, "maximum ProcessActions ticks to run before giving up")
	demo.Flags().DurationP("interval", "i", 50*time.Millisecond, "delay between ticks")
	demo.Does(runDemo)

	if err := set.Exec(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runDemo(flags *flag.FlagSet, printer *cli.Printer) error {
	ticks, err := flags.GetInt("ticks")
	if err != nil {
		return err
	}
	interval, err := flags.GetDuration("interval")
	if err != nil {
		return err
	}

	log := newLogger()
	r := bus.New(bus.WithLogger(log), bus.WithLockTimeout(env.Duration("MICRODDS_LOCK_TIMEOUT", bus.DefaultLockTimeout)))

	r.Subscribe("/busctl/log", func(topic string, payload []byte, _ any) {
		printer.Printf("[%s] %s\n", topic, string(payload))
	}, nil)

	r.CreateService("/busctl/echo", func(req []byte, _ any) ([]byte, bool) {
		return req, true
	}, bus.Sync, nil)

	r.CreateAction("/busctl/count",
		func(goal []byte, _ any) bool { return len(goal) > 0 },
		func(goal []byte, ctx any) ([]byte, bus.ActionState) {
			state := ctx.(*counterState)
			state.remaining--
			if state.remaining <= 0 {
				return goal, bus.Succeeded
			}
			return nil, bus.Executing
		},
		nil, &counterState{remaining: 3})

	r.Publish("/busctl/log", []byte("registry ready"))

	var resp []byte
	err = retry.WithSettings(retry.Settings{MaxTries: 3, TimeBetweenRetries: 10 * time.Millisecond}, func() (bool, error) {
		var ok bool
		resp, ok = r.CallSync("/busctl/echo", []byte("ping"), 0)
		if !ok {
			return true, fmt.Errorf("echo call failed")
		}
		return false, nil
	})
	if err != nil {
		return err
	}
	printer.Printf("echo replied: %s\n", string(resp))

	task := r.NewTask()
	done := syncx.NewFuture[bus.ActionState]()
	r.SendGoal(task, "/busctl/count", []byte("go"), nil, func(name string, _ []byte, state bus.ActionState, _ any) {
		done.Resolve(state)
	}, nil, 0)

	ctx := signalx.SignalCtx(context.Background(), os.Interrupt, syscall.SIGTERM)

	for i := 0; i < ticks; i++ {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		r.ProcessActions()
		r.ProcessPending(task, 0)

		state := done.Await(interval)
		if state != bus.Accepted {
			printer.Printf("action finished: %s\n", state)
			return nil
		}
	}
	return fmt.Errorf("action did not complete within %d ticks", ticks)
}

type counterState struct {
	remaining int
}
