package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jask/scenescope/internal/enums"
)

func newEnumsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "enums [type]",
		Short: "List enum types, or the options of one type",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := enums.Default()
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)

			if len(args) == 0 {
				t.AppendHeader(table.Row{"Type", "Options"})
				for _, typ := range r.Types() {
					opts, _, err := r.ResolveOptions(typ)
					if err != nil {
						return err
					}
					t.AppendRow(table.Row{typ, len(opts)})
				}
				t.Render()
				return nil
			}

			typ := args[0]
			opts, ok, err := r.ResolveOptions(typ)
			if err != nil {
				a.logger.Error("enum table integrity error", "type", typ, "error", err)
				return err
			}
			if !ok {
				if s, found := r.Suggest(typ); found {
					return fmt.Errorf("unknown enum type %q (did you mean %q?)", typ, s)
				}
				return fmt.Errorf("unknown enum type %q", typ)
			}
			t.AppendHeader(table.Row{"Label", "Value"})
			for _, o := range opts {
				t.AppendRow(table.Row{o.Label, o.Value})
			}
			t.Render()
			return nil
		},
	}
}
