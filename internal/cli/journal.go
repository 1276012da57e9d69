package cli

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jask/scenescope/internal/bridge"
	"github.com/jask/scenescope/internal/journal"
)

func newReplayCmd(a *app) *cobra.Command {
	var speed float64
	cmd := &cobra.Command{
		Use:   "replay <session-id>",
		Short: "Open the inspector over a recorded session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openJournal(a.cfg.Journal.Path)
			if err != nil {
				return err
			}
			defer db.Close()
			frames, err := journal.NewStore(db).Frames(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(frames) == 0 {
				return fmt.Errorf("session %s has no frames", args[0])
			}
			a.logger.Info("replaying session", "session", args[0], "frames", len(frames), "speed", speed)
			replay := bridge.NewReplay(frames, speed, a.logger)
			return a.runTUI(cmd.Context(), replay, replay.Run, "replay "+args[0])
		},
	}
	cmd.Flags().Float64Var(&speed, "speed", 1, "playback speed multiplier, 0 plays without delays")
	return cmd
}

func newSessionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "List recorded sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openJournal(a.cfg.Journal.Path)
			if err != nil {
				return err
			}
			defer db.Close()
			sessions, err := journal.NewStore(db).Sessions(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(sessions) == 0 {
				_, _ = fmt.Fprintln(w, "(no sessions)")
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(w)
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"ID", "Target", "Started", "Frames", "Errors"})
			for _, s := range sessions {
				t.AppendRow(table.Row{s.ID, s.Target, s.StartedAt.Local().Format(time.DateTime), s.Frames, s.Errors})
			}
			t.Render()
			return nil
		},
	}
}

func newPruneCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete all but the newest recorded sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openJournal(a.cfg.Journal.Path)
			if err != nil {
				return err
			}
			defer db.Close()
			n, err := journal.NewStore(db).Prune(cmd.Context(), a.cfg.Journal.KeepSessions)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %d session(s), kept at most %d\n", n, a.cfg.Journal.KeepSessions)
			return nil
		},
	}
	cmd.Flags().Int("keep", 0, "number of sessions to keep (default from config)")
	return cmd
}
