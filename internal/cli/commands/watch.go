package commands

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/leapfmt/internal/discover"
	"github.com/leapstack-labs/leapfmt/internal/runner"
)

// debounceDelay batches rapid editor save events before reformatting.
const debounceDelay = 100 * time.Millisecond

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Reformat SQL files as they change",
		Long: `Watch a directory tree and align INSERT statements in any .sql file
the moment it is saved. Hidden directories and configured excludes
are not watched. Stop with Ctrl+C.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) > 0 {
				root = args[0]
			}
			return runWatch(cmd, root)
		},
	}
	return cmd
}

func runWatch(cmd *cobra.Command, root string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer
	logger := cmdCtx.Logger

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watchDirRecursive(watcher, root, cmdCtx.Cfg.Exclude); err != nil {
		return fmt.Errorf("failed to watch %s: %w", root, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r.Printf("Watching %s for SQL changes. Press Ctrl+C to stop.\n", root)

	opts := runner.Options{Backup: cmdCtx.Cfg.Backup, Jobs: 1}
	pending := make(map[string]struct{})
	var debounce *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			// New directories join the watch set so nested saves
			// keep arriving.
			if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
				if event.Op&fsnotify.Create != 0 {
					_ = watchDirRecursive(watcher, event.Name, cmdCtx.Cfg.Exclude)
				}
				continue
			}
			if !discover.IsSQLFile(event.Name) || strings.HasSuffix(event.Name, ".bak") {
				continue
			}

			pending[event.Name] = struct{}{}
			if debounce == nil {
				debounce = time.NewTimer(debounceDelay)
			} else {
				debounce.Reset(debounceDelay)
			}
			fire = debounce.C

		case <-fire:
			fire = nil
			for path := range pending {
				res := runner.FormatFile(path, opts, logger)
				switch {
				case res.Err != nil:
					r.Errorf("Error: %v\n", res.Err)
				case res.Status == runner.StatusError:
					for _, e := range res.Errs {
						r.Errorf("%s:%s\n", path, e)
					}
				case res.Changed:
					r.Printf("Formatted: %s\n", r.Styles().FilePath.Render(path))
				}
			}
			pending = make(map[string]struct{})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		}
	}
}

// watchDirRecursive adds dir and its subdirectories to the watcher,
// skipping hidden directories and configured excludes.
func watchDirRecursive(watcher *fsnotify.Watcher, dir string, exclude []string) error {
	excluded := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		excluded[name] = true
	}

	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		name := info.Name()
		if path != dir && (strings.HasPrefix(name, ".") || excluded[name]) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}
