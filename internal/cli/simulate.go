package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/jask/scenescope/internal/simulate"
)

func newSimulateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Serve a simulated target for demos and testing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv := simulate.NewServer(simulate.Config{
				Addr:     a.cfg.Simulate.Addr,
				Interval: a.cfg.Simulate.Interval,
				Seed:     uint64(time.Now().UnixNano()),
				Logger:   a.logger,
			})
			cmd.Printf("simulated target on ws://%s/bridge (ctrl+c to stop)\n", a.cfg.Simulate.Addr)
			return srv.Serve(cmd.Context())
		},
	}
	cmd.Flags().String("addr", "", "listen address")
	cmd.Flags().Duration("interval", 0, "renderer update interval")
	return cmd
}
