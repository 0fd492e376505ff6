package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/1broseidon/cursorlock/internal/confine"
	"github.com/1broseidon/cursorlock/internal/monitors"
	"github.com/1broseidon/cursorlock/internal/platform"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	backend, err := platform.NewLinuxBackendFromDisplay()
	if err != nil {
		return fmt.Errorf("connect to display: %w", err)
	}
	defer backend.Close()

	printBanner()

	catalog, err := monitors.Enumerate(backend)
	if err != nil {
		return err
	}

	current, haveCurrent := currentMonitorIndex(backend, catalog)
	printListing(catalog, current, haveCurrent)

	fmt.Printf("\nEnter monitor number to lock to (1-%d), or press Enter for current monitor: ", catalog.Len())
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read selection: %w", err)
	}

	target, err := monitors.Resolve(line, catalog, current, haveCurrent)
	if err != nil {
		return err
	}

	if err := backend.SetClip(target.Bounds); err != nil {
		return fmt.Errorf("apply initial clip: %w", err)
	}
	state := &confine.State{Active: target.Bounds, Clipped: true}
	logger.Info("locked to monitor", "name", target.Name, "rect", target.Bounds)

	// The clip must never outlive the process.
	defer func() {
		if err := backend.ClearClip(); err != nil {
			logger.Warn("failed to clear clip on exit", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		sig := <-sigCh
		logger.Info("shutting down", "signal", sig.String())
		cancel()
	}()

	confine.NewLoop(backend, state, logger).Run(ctx)
	return nil
}

func printBanner() {
	fmt.Println("cursorlock - locks the cursor to a selected monitor")
	fmt.Println("Controls:")
	fmt.Println("- Press Ctrl or Alt to release the lock once the cursor reaches the monitor edge")
	fmt.Println("- Press F11 to move the lock to the monitor under the cursor")
	fmt.Println()
	fmt.Println("Available monitors:")
}

func printListing(catalog monitors.Catalog, current int, haveCurrent bool) {
	for i, m := range catalog.All() {
		marker := ""
		if haveCurrent && i == current {
			marker = " (current)"
		}
		fmt.Printf("%d. %s: %dx%d at (%d, %d) to (%d, %d)%s\n",
			i+1, m.Name,
			m.Bounds.Width(), m.Bounds.Height(),
			m.Bounds.Left, m.Bounds.Top,
			m.Bounds.Right, m.Bounds.Bottom,
			marker)
	}
}

// currentMonitorIndex resolves the catalog position of the monitor under the
// cursor, if any.
func currentMonitorIndex(backend platform.Backend, catalog monitors.Catalog) (int, bool) {
	cursor, ok := backend.CursorPosition()
	if !ok {
		return 0, false
	}
	return catalog.IndexAt(cursor)
}
