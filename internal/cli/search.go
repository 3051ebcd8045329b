package cli

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/five82/studio/internal/design"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Run the template search without the UI",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			if strings.TrimSpace(query) == "" {
				return errors.New("query is empty")
			}

			out := cmd.OutOrStdout()
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TITLE\tTYPE\tPLAN")
			for _, r := range design.MockResults(query) {
				plan := "free"
				if r.Premium {
					plan = "pro"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", r.Title, r.Type, plan)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			suggestions := design.Suggest(query)
			if len(suggestions) == 0 {
				fmt.Fprintln(out, "\nNo suggestions")
				return nil
			}
			fmt.Fprintf(out, "\nSuggestions: %s\n", strings.Join(suggestions, ", "))
			return nil
		},
	}
}
