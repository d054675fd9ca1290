package cli

import (
	"context"
	"fmt"

	"athwela/internal/adapter/persistence/registry"
	"athwela/internal/domain/entities"

	"github.com/spf13/cobra"
)

type RegistryOptions struct {
	*RootOptions
	Database string
	ClientID string
	RecordID string
	Role     string
}

func NewRegistryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RegistryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "registry",
		Short: "Inspect the local client registry",
	}
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to the registry SQLite database (required)")
	_ = cmd.MarkPersistentFlagRequired("db")

	clients := &cobra.Command{
		Use:           "clients",
		Short:         "List client ids that have registry entries",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(opts, func(ctx context.Context, st *registry.Store) error {
				ids, err := st.Clients(ctx)
				if err != nil {
					return WrapExitError(ExitCommandError, "failed to list clients", err)
				}
				if ids == nil {
					ids = []string{}
				}
				if opts.Format == "json" {
					return writeJSON(cmd.OutOrStdout(), ids)
				}
				for _, id := range ids {
					fmt.Fprintln(cmd.OutOrStdout(), id)
				}
				return nil
			})
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List a client's entries",
		Long: `List the records a client created (owner) or pledged to (pledger).

Examples:
  reliefctl registry list --db registry.db --client 5f0c
  reliefctl registry list --db registry.db --client 5f0c --role pledger --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			role := entities.RegistryRole(opts.Role)
			if !role.Valid() {
				return WrapExitError(ExitCommandError, fmt.Sprintf("invalid role %q", opts.Role), nil)
			}
			return withStore(opts, func(ctx context.Context, st *registry.Store) error {
				entries, err := st.List(ctx, opts.ClientID, role)
				if err != nil {
					return WrapExitError(ExitCommandError, "failed to list entries", err)
				}
				if entries == nil {
					entries = []entities.RegistryEntry{}
				}
				if opts.Format == "json" {
					return writeJSON(cmd.OutOrStdout(), entries)
				}
				if len(entries) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "No %s entries for client: %s\n", role, opts.ClientID)
					return nil
				}
				for _, e := range entries {
					fmt.Fprintf(cmd.OutOrStdout(), "%s  %-8s %s\n", e.RecordedAt.Format("2006-01-02 15:04:05"), e.Role, e.RecordID)
				}
				return nil
			})
		},
	}
	list.Flags().StringVar(&opts.ClientID, "client", "", "client id (required)")
	_ = list.MarkFlagRequired("client")
	list.Flags().StringVar(&opts.Role, "role", string(entities.RegistryRoleOwner), "owner|pledger")

	forget := &cobra.Command{
		Use:           "forget",
		Short:         "Remove one entry from a client's registry",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			role := entities.RegistryRole(opts.Role)
			if !role.Valid() {
				return WrapExitError(ExitCommandError, fmt.Sprintf("invalid role %q", opts.Role), nil)
			}
			return withStore(opts, func(ctx context.Context, st *registry.Store) error {
				if err := st.Forget(ctx, opts.ClientID, opts.RecordID, role); err != nil {
					return WrapExitError(ExitCommandError, "failed to forget entry", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "forgot %s %s for client %s\n", role, opts.RecordID, opts.ClientID)
				return nil
			})
		},
	}
	forget.Flags().StringVar(&opts.ClientID, "client", "", "client id (required)")
	_ = forget.MarkFlagRequired("client")
	forget.Flags().StringVar(&opts.RecordID, "record", "", "record id (required)")
	_ = forget.MarkFlagRequired("record")
	forget.Flags().StringVar(&opts.Role, "role", string(entities.RegistryRoleOwner), "owner|pledger")

	cmd.AddCommand(clients, list, forget)
	return cmd
}

func withStore(opts *RegistryOptions, fn func(ctx context.Context, st *registry.Store) error) error {
	st, err := registry.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open registry database", err)
	}
	defer st.Close()
	return fn(context.Background(), st)
}
