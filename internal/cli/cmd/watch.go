package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/shellgrid/internal/application/workbench"
	"github.com/bnema/shellgrid/internal/cli"
	"github.com/bnema/shellgrid/internal/domain/entity"
	"github.com/bnema/shellgrid/internal/logging"
	"github.com/bnema/shellgrid/internal/ui/mainloop"
)

// defaultSyncInterval is how often watch polls the database for profile
// state written by other shellgrid processes.
const defaultSyncInterval = 2 * time.Second

var watchInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep a workbench open and redraw it when settings change",
	Long: `Restore the workspace layout and keep it open. The layout is redrawn when
config.toml changes on disk or when another shellgrid process changes the
profile layout state (part sizes, panel alignment, activity and status bar).

The layout is saved when watch exits (Ctrl+C).`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipAppInit: "true"},
	RunE:        runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVar(&watchInterval, "interval", defaultSyncInterval, "how often to check for state changes from other processes")
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if flags.ephemeral {
		return errors.New("watch needs the config file and database; drop --ephemeral")
	}
	if err := validateOutput(flags.output); err != nil {
		return err
	}

	loop := mainloop.New()
	opts := appOptions()
	opts.Post = loop.Schedule
	a, err := cli.NewApp(opts)
	if err != nil {
		return fmt.Errorf("initialize app: %w", err)
	}
	defer func() { _ = a.Close() }()
	a.BuildInfo = buildInfo

	ctx, stop := signal.NotifyContext(a.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	render := func(snap cli.Snapshot) {
		if flags.output != outputText {
			_ = encode(out, snap, flags.output)
			return
		}
		fmt.Fprintf(out, "%s\n%s\n\n", a.Theme.Subtle.Render(time.Now().Format(time.TimeOnly)),
			renderSnapshot(a.Theme, snap, snapshotDetail{}))
	}

	w := &watcher{app: a, loop: loop, render: render, interval: watchInterval, session: sessionOptions()}
	err = w.run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// watcher keeps a session open on a main loop. Every layout event and
// every settings or state change funnels through the loop, so the layout
// is only touched from one goroutine.
type watcher struct {
	app      *cli.App
	loop     *mainloop.Loop
	render   func(cli.Snapshot)
	interval time.Duration
	session  cli.SessionOptions
}

func (w *watcher) run(ctx context.Context) error {
	if w.app.Manager == nil || w.app.States == nil {
		return errors.New("watch needs a persistent app")
	}
	log := logging.FromContext(logging.WithComponent(ctx, "watch"))

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error { return w.loop.Run(gctx) })

	coalescer := mainloop.NewCoalescer(w.loop.Schedule)
	defer coalescer.Stop()

	var s *cli.Session
	err := w.loop.Invoke(gctx, func() error {
		var err error
		s, err = w.app.OpenWorkbench(gctx, w.session)
		if err != nil {
			return err
		}
		redraw := func() { coalescer.Post("render", func() { w.render(s.Snapshot()) }) }
		l := s.Layout
		l.OnDidChangePartVisibility(func(workbench.PartVisibilityChange) { redraw() })
		l.OnDidChangePanelPosition(func(entity.Position) { redraw() })
		l.OnDidChangePanelAlignment(func(entity.PanelAlignment) { redraw() })
		l.OnDidChangeZenMode(func(bool) { redraw() })
		l.OnDidChangeMainEditorCenteredLayout(func(bool) { redraw() })
		l.OnDidLayoutMainContainer(func(entity.Dimension) { redraw() })

		// Baseline so the first Sync only reports later changes.
		if err := w.app.States.Sync(gctx); err != nil {
			log.Warn().Err(err).Msg("initial state sync failed")
		}
		w.render(s.Snapshot())
		return nil
	})
	if err != nil {
		cancel()
		_ = g.Wait()
		return err
	}

	if err := w.app.Manager.Watch(gctx); err != nil {
		log.Warn().Err(err).Msg("config watcher not started")
	}

	g.Go(func() error {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case <-ticker.C:
				w.loop.Post(func() {
					if err := w.app.States.Sync(gctx); err != nil {
						log.Warn().Err(err).Msg("state sync failed")
					}
				})
			}
		}
	})

	err = g.Wait()

	// The loop has stopped; the session can be closed from here.
	if closeErr := s.Close(context.WithoutCancel(ctx)); closeErr != nil {
		log.Warn().Err(closeErr).Msg("failed to save layout state")
	}
	return err
}
