package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stattracker/backend"
	"stattracker/colormap"
	"stattracker/config"
	"stattracker/httpapi"
	"stattracker/overlay"
	"stattracker/process_blob"
	"stattracker/process_find"
	"stattracker/tracker"
	"stattracker/window"

	"golang.org/x/sync/errgroup"
)

func main() {
	configFlag := flag.String("config", "", "Path to a YAML config file")
	replayFlag := flag.String("replay", "", "Replay a recorded session directory instead of attaching to a game")
	recordFlag := flag.String("record", "", "Record every session below this directory")
	listenFlag := flag.String("listen", "", "HTTP listen address for /state and /metrics")
	quietFlag := flag.Bool("quiet", false, "Do not print mission changes to the console")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *recordFlag != "" {
		cfg.RecordDir = *recordFlag
	}
	if *listenFlag != "" {
		cfg.HTTP.Listen = *listenFlag
	}
	config.Normalize(cfg)

	detector, err := newDispatcher(cfg, *replayFlag)
	if err != nil {
		fmt.Printf("Error loading replay: %v\n", err)
		os.Exit(1)
	}

	a := &app{
		cfg:      cfg,
		detector: detector,
		quiet:    *quietFlag,
		launch:   overlay.Launch,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = a.run(ctx)
	stop()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// app owns everything started for one run. run returns only after the
// overlay program and the HTTP server are stopped.
type app struct {
	cfg      *config.Config
	detector tracker.Detector
	quiet    bool
	launch   func(path string, size float32, colorMap string) (*overlay.Controller, error)
}

func (a *app) run(ctx context.Context) error {
	cfg := a.cfg
	cmap, _ := colormap.ByLabel(cfg.Overlay.ColorMap)

	store := tracker.NewStore()
	sinks := []tracker.Sink{store}
	if !a.quiet {
		sinks = append(sinks, newConsole(cmap))
	}

	if cfg.Overlay.Enabled {
		ctrl, err := a.launch(cfg.Overlay.Path, cfg.Overlay.Size, cmap.Label)
		if err != nil {
			return fmt.Errorf("starting overlay: %w", err)
		}
		defer ctrl.Close()
		sinks = append(sinks, tracker.SinkFunc(func(s tracker.Snapshot) {
			ctrl.Update(s.Data)
		}))
	}

	t, err := tracker.New(tracker.Config{
		PollInterval:   cfg.PollInterval(),
		DetectInterval: cfg.DetectInterval(),
	}, a.detector, sinks...)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return t.Run(ctx)
	})

	if cfg.HTTP.Listen != "" {
		srv := &http.Server{
			Addr:              cfg.HTTP.Listen,
			Handler:           httpapi.NewRouter(store, cfg.HTTP.AllowedOrigins),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			fmt.Printf("Serving state on http://%s/state\n", cfg.HTTP.Listen)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("http: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	return g.Wait()
}

// newDispatcher attaches to live processes, or to a recorded dump when replay is set
func newDispatcher(cfg *config.Config, replay string) (*backend.Dispatcher, error) {
	if replay != "" {
		dump, err := process_blob.LoadProcessDump(replay)
		if err != nil {
			return nil, err
		}
		fmt.Printf("Replaying %s (pid %d) from %s\n", dump.Name, dump.PID, replay)
		return &backend.Dispatcher{
			Finder: dump,
			Open:   dump.Opener(),
			Window: window.New(),
		}, nil
	}

	return &backend.Dispatcher{
		Finder:    process_find.New(),
		Open:      openProcess,
		Window:    window.New(),
		RecordDir: cfg.RecordDir,
	}, nil
}
