package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/advisor/internal/cli/formatter"
)

var errNoDatabase = errors.New("history database is not configured")

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the stored academic history with a .csv or .xlsx file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Imports == nil {
				return errNoDatabase
			}
			result, err := app.Imports.ImportHistory(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult(result.Import, result.Students))
			return nil
		},
	}
}

func newImportsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "imports",
		Short: "List previous history imports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Imports == nil {
				return errNoDatabase
			}
			imports, err := app.Imports.ListImports(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImports(imports, app.now()))
			return nil
		},
	}
}
