// Package cli implements reliefctl, the operator tool for table bootstrap and
// registry inspection.
package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format string // "json" | "text"
}

var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the reliefctl root command. tables is the DynamoDB
// connector used by `tables create`; tests pass a fake.
func NewRootCommand(tables TableConnector) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "reliefctl",
		Short: "Operator tooling for the relief service",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewTablesCommand(opts, tables))
	cmd.AddCommand(NewRegistryCommand(opts))
	return cmd
}
