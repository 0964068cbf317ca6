package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/advisor/internal/cli/formatter"
	"github.com/alexanderramin/advisor/internal/contract"
	"github.com/alexanderramin/advisor/internal/importer"
	"github.com/alexanderramin/advisor/internal/logging"
	"github.com/alexanderramin/advisor/internal/repository"
)

func newRecommendCmd(app *App) *cobra.Command {
	var historyPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "recommend [NAME]",
		Short: "Recommend electives for a student",
		Long: `Recommend up to five electives for a student, ranked by similarity to the
courses they already completed. NAME may be given as several words. On an
interactive terminal the name is prompted for when omitted.`,
		Example: `  advisor recommend "Jane Doe"
  advisor recommend Jane Doe --history merged.xlsx --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := resolveStudentName(app, args)
			if err != nil {
				return err
			}

			var history repository.HistoryRepo
			if historyPath != "" {
				table, err := importer.Load(historyPath)
				if err != nil {
					return fmt.Errorf("loading history file: %w", err)
				}
				logging.Debug().
					Str("path", historyPath).
					Int("rows", len(table.Records)).
					Bool("gpa", table.Schema.HasGPA).
					Msg("history file loaded")
				history = repository.NewMemoryHistoryRepo(table.Records, table.Schema)
			}

			req := contract.NewRecommendRequest(name)
			now := app.now()
			req.Now = &now

			resp, err := app.Advisor(history).Recommend(cmd.Context(), req)
			if err != nil {
				var recErr *contract.RecommendError
				if errors.As(err, &recErr) {
					return errors.New(recErr.Message)
				}
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := json.MarshalIndent(resp, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding response: %w", err)
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			fmt.Fprint(out, formatter.FormatRecommendation(resp))
			return nil
		},
	}

	addHistoryFlag(cmd.Flags(), &historyPath)
	addJSONFlag(cmd.Flags(), &asJSON, "Print the result as JSON")

	return cmd
}

// resolveStudentName joins the positional words, or prompts when none were
// given on an interactive terminal.
func resolveStudentName(app *App, args []string) (string, error) {
	name := strings.Join(args, " ")
	if len(args) == 0 && app.interactive() {
		prompt := app.PromptName
		if prompt == nil {
			prompt = promptStudentName
		}
		var err error
		if name, err = prompt(); err != nil {
			return "", err
		}
	}
	if err := validateName(name); err != nil {
		return "", err
	}
	return strings.TrimSpace(name), nil
}
