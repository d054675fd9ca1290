package cli

import (
	"context"
	"fmt"

	appconfig "athwela/internal/config"
	"athwela/internal/infrastructure/database"

	"github.com/spf13/cobra"
)

// TableConnector returns the client tables are created through.
type TableConnector func(ctx context.Context, cfg appconfig.Config) (database.TableCreator, error)

type TablesOptions struct {
	*RootOptions
	ConfigPath string
	Endpoint   string
}

type tablesResult struct {
	Tables  []string `json:"tables"`
	Created []string `json:"created"`
}

func NewTablesCommand(rootOpts *RootOptions, connect TableConnector) *cobra.Command {
	opts := &TablesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Manage DynamoDB tables",
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Create any missing table",
		Long: `Create the needs, people, volunteers and service request tables if they do not exist.

Table names and the endpoint come from the same environment as the API server.

Examples:
  reliefctl tables create
  reliefctl tables create --endpoint http://localhost:8000 --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTablesCreate(cmd, opts, connect)
		},
	}
	create.Flags().StringVar(&opts.ConfigPath, "config", ".", "directory holding the .env file")
	create.Flags().StringVar(&opts.Endpoint, "endpoint", "", "override DYNAMODB_ENDPOINT")

	cmd.AddCommand(create)
	return cmd
}

func runTablesCreate(cmd *cobra.Command, opts *TablesOptions, connect TableConnector) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := appconfig.LoadConfig(opts.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load configuration", err)
	}
	if opts.Endpoint != "" {
		cfg.DynamoDBEndpoint = opts.Endpoint
	}

	ddb, err := connect(ctx, cfg)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to connect to dynamodb", err)
	}

	names := database.TableNames(cfg)
	created, err := database.EnsureTables(ctx, ddb, names)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to create tables", err)
	}
	if created == nil {
		created = []string{}
	}

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), tablesResult{Tables: names, Created: created})
	}
	for _, name := range names {
		state := "exists"
		for _, c := range created {
			if c == name {
				state = "created"
				break
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", name, state)
	}
	return nil
}
