package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runnerdeck/runnerdeck"
	"github.com/runnerdeck/runnerdeck/internal/audit"
	"github.com/runnerdeck/runnerdeck/pkg/logging"
	"github.com/runnerdeck/runnerdeck/pkg/reconciler"
)

// NewRegisterCommand creates the register command.
func (a *App) NewRegisterCommand() *cobra.Command {
	var experimental bool

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register runner types with the store",
		Long: `Register reconciles the runner type catalog against the store.

Each definition is looked up by name, validated, and upserted: new
definitions are created, known definitions are updated in place keeping
their stored identity. Experimental runner types are skipped unless
--experimental is set. A failing definition is reported and skipped
without blocking the others.`,
		Example: `  runnerdeck register                      # Register the builtin catalog
  runnerdeck register --experimental       # Include experimental runner types
  runnerdeck register --catalog-dir ./defs # Register definitions from YAML files
  runnerdeck register --store-dsn postgres://localhost/runnerdeck`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := logging.WithLogger(cmd.Context(), a.logger)

			store, closeStore, err := a.Store(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			opts := []runnerdeck.Option{
				runnerdeck.WithStore(store),
				runnerdeck.WithAuditSink(audit.New(a.logger)),
				runnerdeck.WithLogger(a.logger),
			}
			if a.config.CatalogDir != "" {
				opts = append(opts, runnerdeck.WithCatalogDir(a.config.CatalogDir))
			}

			deck, err := runnerdeck.New(opts...)
			if err != nil {
				return err
			}

			result, err := deck.RegisterRunnerTypes(ctx, reconciler.WithExperimental(experimental))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Summary())
			for _, outcome := range result.Outcomes {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", outcome)
			}

			if !result.IsSuccess() {
				return fmt.Errorf("%d runner type(s) failed to register", result.Failed())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&experimental, "experimental", false, "also register experimental runner types")

	return cmd
}
