package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zestyzomato/zesty/internal/adapters/outbound/config"
	"github.com/zestyzomato/zesty/internal/domain"
)

func newInitCmd() *cobra.Command {
	var (
		backend string
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Generate a .zesty.yaml configuration file",
		Long:  "Create a .zesty.yaml with default settings for the chosen storage backend.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			cfg := domain.Config{Backend: domain.Backend(backend)}
			if err := cfg.Validate(); err != nil {
				return err
			}

			content, err := config.Render(cfg.WithDefaults())
			if err != nil {
				return fmt.Errorf("rendering config: %w", err)
			}

			if err := os.WriteFile(dest, content, 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&backend, "backend", string(domain.BackendJSON), "Storage backend (json, pebble)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .zesty.yaml")

	return cmd
}
