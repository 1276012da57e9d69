package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jask/scenescope/internal/bridge"
	"github.com/jask/scenescope/internal/journal"
	"github.com/jask/scenescope/internal/panel"
	"github.com/jask/scenescope/internal/tui"
)

func newInspectCmd(a *app) *cobra.Command {
	var noJournal bool
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Connect to a target and open the inspector",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.inspect(cmd.Context(), !noJournal && a.cfg.Journal.Enabled)
		},
	}
	cmd.Flags().String("url", "", "bridge websocket URL")
	cmd.Flags().String("start-panel", "", "panel shown first (scene|geometries|materials|textures|rendering)")
	cmd.Flags().BoolVar(&noJournal, "no-journal", false, "do not record this session")
	return cmd
}

func (a *app) inspect(ctx context.Context, record bool) error {
	opts := bridge.Options{
		URL:            a.cfg.Bridge.URL,
		DialTimeout:    a.cfg.Bridge.DialTimeout,
		ReconnectDelay: a.cfg.Bridge.ReconnectDelay,
		Logger:         a.logger,
	}
	if record {
		db, err := openJournal(a.cfg.Journal.Path)
		if err != nil {
			return err
		}
		defer db.Close()
		store := journal.NewStore(db)
		rec, err := journal.NewRecorder(ctx, store, a.cfg.Bridge.URL, a.logger)
		if err != nil {
			return err
		}
		opts.OnMessage = rec.Record
		defer func() {
			if n, err := store.Prune(context.Background(), a.cfg.Journal.KeepSessions); err != nil {
				a.logger.Warn("prune journal", "error", err)
			} else if n > 0 {
				a.logger.Info("pruned journal", "sessions", n)
			}
		}()
	}
	conn := bridge.NewConn(opts)
	return a.runTUI(ctx, conn, conn.Run, a.cfg.Bridge.URL)
}

// runTUI runs the inspector over client while run feeds it. Quitting the UI
// stops run; run closing the event stream leaves the UI up until the user
// quits.
func (a *app) runTUI(ctx context.Context, client bridge.Client, run func(context.Context) error, title string) error {
	eg, egctx := errgroup.WithContext(ctx)
	runCtx, stop := context.WithCancel(egctx)
	defer stop()

	model := tui.New(tui.Options{
		Client:       client,
		StartPanel:   panel.Tag(a.cfg.UI.StartPanel),
		ErrorTimeout: a.cfg.UI.ErrorTimeout,
		Title:        title,
		Logger:       a.logger,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(egctx))

	eg.Go(func() error {
		return run(runCtx)
	})
	eg.Go(func() error {
		tui.Pump(client.Events(), p.Send)
		return nil
	})
	eg.Go(func() error {
		defer stop()
		if _, err := p.Run(); err != nil && !(errors.Is(err, tea.ErrProgramKilled) && egctx.Err() != nil) {
			return fmt.Errorf("run inspector: %w", err)
		}
		return nil
	})
	return eg.Wait()
}

func openJournal(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir journal dir: %w", err)
	}
	return journal.OpenMigrated(path)
}
