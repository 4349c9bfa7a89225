package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/leofalp/jsonalchemist"
)

func (c *cli) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-check a file every time it is saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.alchemist()
			if err != nil {
				return err
			}
			return c.watch(cmd.Context(), a, args[0], nil)
		},
	}
}

// watch prints a detection line for path now and after every change until
// ctx is done. The parent directory is watched so editors that replace the
// file on save are handled. ready, if non-nil, is closed once the watcher is
// registered.
func (c *cli) watch(ctx context.Context, a *jsonalchemist.Alchemist, path string, ready chan<- struct{}) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer func() {
		_ = w.Close()
	}()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	c.report(a, path, abs)
	if ready != nil {
		close(ready)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				c.report(a, path, abs)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(c.stderr, "%s %v\n", c.palette.warn.Sprint("watch:"), err)
		}
	}
}

func (c *cli) report(a *jsonalchemist.Alchemist, name, abs string) {
	data, err := os.ReadFile(abs)
	if err != nil {
		fmt.Fprintf(c.stdout, "%s %s: %v\n", c.palette.fail.Sprint("unreadable"), name, err)
		return
	}
	fmt.Fprintln(c.stdout, c.describe(name, a.Detect(string(data))))
}
