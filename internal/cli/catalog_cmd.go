package cli

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/advisor/internal/catalog"
	"github.com/alexanderramin/advisor/internal/cli/formatter"
)

func newCatalogCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the elective catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := app.Advisor(nil).Catalog()
			out := cmd.OutOrStdout()
			if asJSON {
				data, err := json.MarshalIndent(catalog.File{Version: cat.Version(), Electives: cat.Entries()}, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding catalog: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			fmt.Fprint(out, formatter.FormatCatalog(cat.Version(), cat.Entries()))
			return nil
		},
	}
	addJSONFlag(cmd.Flags(), &asJSON, "Print the catalog in its JSON file format")
	return cmd
}
