package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "zesty",
		Short:         "Zesty restaurant order management",
		Long:          "Zesty keeps a restaurant menu and its customer orders on disk: add dishes, take orders, track their status and compute totals.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := cmd.PersistentFlags()
	f.StringVar(&opts.configPath, "config", defaultConfigPath, "Path to the configuration file")
	f.StringVar(&opts.dataPath, "data", "", "Data file (json) or directory (pebble); overrides data_file")
	f.StringVar(&opts.backend, "backend", "", "Storage backend: json or pebble; overrides backend")
	f.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error, disabled")
	f.BoolVar(&opts.logJSON, "log-json", false, "Emit logs as JSON instead of console text")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newDishCmd(opts))
	cmd.AddCommand(newOrderCmd(opts))
	cmd.AddCommand(newShellCmd(opts))
	cmd.AddCommand(newMCPCmd(opts))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}
