package main

import (
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/extractly/duckling/httpapi"
	"github.com/extractly/duckling/internal/xlog"
	"github.com/extractly/duckling/rank"
)

func serveCmd() *cobra.Command {
	var (
		addr             string
		watchClassifiers string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the duckling HTTP API (POST /parse, GET /healthz, GET /metrics)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if watchClassifiers != "" {
				stop, err := watchClassifierDir(watchClassifiers)
				if err != nil {
					return err
				}
				defer stop()
			}

			s := httpapi.New()
			return s.Start(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8081", "address to listen on")
	cmd.Flags().StringVar(&watchClassifiers, "watch-classifiers", "", "directory of classifier JSON files to hot-reload on change (fsnotify)")

	return cmd
}

// watchClassifierDir loads every *.json file in dir once, installs the
// union as the process-wide classifier override, and then re-loads and
// re-installs it whenever fsnotify reports a write in dir — without a
// server restart. Grounded in pkg/prefetch's fsnotify-driven watch loop
// (detector.go), here watching a config directory instead of git refs.
func watchClassifierDir(dir string) (stop func(), err error) {
	reload := func() {
		files, globErr := filepath.Glob(filepath.Join(dir, "*.json"))
		if globErr != nil {
			xlog.Warningf("listing classifier dir %s: %v", dir, globErr)
			return
		}
		merged := make(rank.Classifiers)
		for _, f := range files {
			c, loadErr := rank.LoadFile(f)
			if loadErr != nil {
				continue // LoadFile already logged and counted the failure
			}
			for name, cl := range c {
				merged[name] = cl
			}
		}
		rank.SetOverride(merged)
		xlog.Infof("reloaded %d classifier file(s) from %s", len(files), dir)
	}

	reload()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if strings.HasSuffix(event.Name, ".json") && (event.Op&(fsnotify.Write|fsnotify.Create) != 0) {
					reload()
				}
			case watchErr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				xlog.Warningf("classifier watcher error: %v", watchErr)
			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
		_ = watcher.Close()
	}, nil
}
