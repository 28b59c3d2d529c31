package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/strongtypes/aliasgen/internal/config"
)

const debounceDelay = 250 * time.Millisecond

func newWatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <source-dir>",
		Short: "Regenerate whenever the directive package changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd.Context(), opts, args[0])
		},
	}
}

func runWatch(ctx context.Context, opts *options, dir string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	regenerate := func() {
		if err := generateDir(dir, opts); err != nil {
			slog.Error("generation failed", "dir", dir, "error", err)
		}
	}
	regenerate()
	slog.Info("watching for changes", "dir", dir)

	debounce := time.NewTimer(debounceDelay)
	debounce.Stop()
	pending := false
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(event) {
				continue
			}
			slog.Debug("change detected", "file", event.Name, "op", event.Op.String())
			debounce.Reset(debounceDelay)
			pending = true
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "error", err)
		case <-debounce.C:
			if pending {
				pending = false
				regenerate()
			}
		}
	}
}

// relevantEvent filters out the generator's own output and anything that is
// neither a Go file nor the declaration file.
func relevantEvent(e fsnotify.Event) bool {
	if e.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	name := filepath.Base(e.Name)
	if strings.HasSuffix(name, ".gen.go") {
		return false
	}
	return strings.HasSuffix(name, ".go") || name == config.FileName
}
