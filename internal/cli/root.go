package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/advisor/internal/catalog"
	"github.com/alexanderramin/advisor/internal/repository"
	"github.com/alexanderramin/advisor/internal/service"
)

// App holds what CLI commands need. The advisor itself is built per command
// so the catalog and history source can be chosen by flags.
type App struct {
	Catalog  *catalog.Catalog
	History  repository.HistoryRepo
	Imports  service.ImportService
	Observer service.UseCaseObserver

	// ListenAddr is the default for "serve --addr".
	ListenAddr string

	// IsInteractive reports whether stdin is a terminal; the name prompt
	// only runs when it returns true.
	IsInteractive func() bool
	// PromptName asks for a student name. Defaults to a huh form.
	PromptName func() (string, error)
	Now        func() time.Time
}

// Advisor builds an AdvisorService over history, or over the stored table
// when history is nil.
func (a *App) Advisor(history repository.HistoryRepo) service.AdvisorService {
	if history == nil {
		history = a.History
	}
	cat := a.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	return service.NewAdvisorService(history, cat, a.Observer)
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now().UTC()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "advisor" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var catalogPath string

	root := &cobra.Command{
		Use:           "advisor",
		Short:         "Elective course recommender",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if catalogPath == "" {
				return nil
			}
			cat, err := catalog.Load(catalogPath)
			if err != nil {
				return fmt.Errorf("loading catalog: %w", err)
			}
			app.Catalog = cat
			return nil
		},
	}
	root.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Elective catalog file (.json, .yaml); defaults to the bundled catalog")

	root.AddCommand(
		newRecommendCmd(app),
		newImportCmd(app),
		newImportsCmd(app),
		newCatalogCmd(app),
		newServeCmd(app),
	)

	return root
}
