package app

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/runnerdeck/runnerdeck/internal/output"
	"github.com/runnerdeck/runnerdeck/pkg/catalogs"
	"github.com/runnerdeck/runnerdeck/pkg/runnertypes"
)

// NewListCommand creates the list command.
func (a *App) NewListCommand() *cobra.Command {
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List runner type definitions in the catalog",
		Long: `List prints the runner type definitions the catalog would register,
in catalog order, without touching the store.`,
		Example: `  runnerdeck list                     # List the builtin catalog
  runnerdeck list -o yaml             # Print definitions as YAML
  runnerdeck list --catalog-dir ./defs`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := output.ParseFormat(formatFlag); err != nil {
				return err
			}
			format := output.DetectFormat(formatFlag)

			catalog, err := a.catalog()
			if err != nil {
				return err
			}
			defs := catalog.Definitions()

			return output.NewFormatter(format).Format(cmd.OutOrStdout(), definitionsToOutput(format, defs))
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "output", "o", "", "output format (table, json, yaml)")

	return cmd
}

func (a *App) catalog() (catalogs.Catalog, error) {
	if a.config.CatalogDir != "" {
		return catalogs.NewFromDir(a.config.CatalogDir)
	}
	return catalogs.Builtin(), nil
}

func definitionsToOutput(format output.Format, defs []runnertypes.Definition) any {
	if format == output.FormatJSON || format == output.FormatYAML {
		return defs
	}

	rows := make([][]string, 0, len(defs))
	for _, def := range defs {
		rows = append(rows, []string{
			def.Name,
			def.RunnerModule,
			strconv.Itoa(len(def.Parameters)),
			fmt.Sprintf("%t", def.Enabled),
			fmt.Sprintf("%t", def.Experimental),
			def.Description,
		})
	}

	return output.Data{
		Headers: []string{"Name", "Runner Module", "Params", "Enabled", "Experimental", "Description"},
		Rows:    rows,
	}
}
