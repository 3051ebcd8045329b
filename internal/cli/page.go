package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/five82/studio/internal/app"
	"github.com/five82/studio/internal/page"
)

func newPageCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "page",
		Short: "Inspect the landing page template",
	}
	cmd.AddCommand(newPageCheckCmd(a))
	return cmd
}

func newPageCheckCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the template has every element the UI binds to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Resolve(a.options())
			if err != nil {
				return err
			}
			p, err := page.Load(cfg.PagePath)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, sel := range page.RequiredSelectors {
				fmt.Fprintf(w, "%s\t%d\n", sel, len(p.All(sel)))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			return p.Validate(page.RequiredSelectors...)
		},
	}
}
