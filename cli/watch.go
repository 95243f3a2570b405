package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
)

type WatchCmd struct {
	Original string `arg name:"original" help:"Unmodified image."`
	Patched  string `arg name:"patched" help:"Modified image, repaired every time it is written."`

	Output string        `optional short:"o" help:"Output file (default: <patched>_fixed.bin)."`
	Inject string        `optional help:"Drift injection point: safe, compat or manual."`
	Offset int           `optional type:"hex" default:"-1" help:"Injection offset for manual mode."`
	Settle time.Duration `optional default:"300ms" help:"Time to wait after the last write before repairing."`
}

func (w *WatchCmd) Run(c *Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return w.watch(ctx, c)
}

func (w *WatchCmd) watch(ctx context.Context, c *Context) error {
	choose, err := chooser(c, w.Inject, w.Offset, false)
	if err != nil {
		return err
	}

	patched, err := filepath.Abs(cleanName(w.Patched))
	if err != nil {
		return err
	}
	output := w.Output
	if output == "" {
		output = OutputName(patched, c.cfg.OutputSuffix)
	}
	if output, err = filepath.Abs(output); err != nil {
		return err
	}
	if output == patched {
		return errors.New("output must differ from the watched file")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	/* Watch the directory, editors often replace the file instead of writing it */
	if err := watcher.Add(filepath.Dir(patched)); err != nil {
		return err
	}

	run := func() {
		if _, err := fixFiles(c, w.Original, patched, output, choose); err != nil {
			c.log.Error().Err(err).Msg("repair failed")
		}
	}

	c.log.Info().Str("file", patched).Msg("watching")
	run()

	var settle <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != patched {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				settle = time.After(w.Settle)
			}

		case <-settle:
			settle = nil
			run()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			c.log.Error().Err(err).Msg("watch")
		}
	}
}
