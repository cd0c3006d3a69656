package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zestyzomato/zesty/internal/adapters/outbound/tui"
)

func newDishCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dish",
		Short: "Manage the menu",
	}
	cmd.AddCommand(newDishAddCmd(opts))
	cmd.AddCommand(newDishRemoveCmd(opts))
	cmd.AddCommand(newDishAvailableCmd(opts))
	cmd.AddCommand(newDishListCmd(opts))
	return cmd
}

func newDishAddCmd(opts *rootOptions) *cobra.Command {
	var unavailable bool

	cmd := &cobra.Command{
		Use:   "add <id> <name> <price>",
		Short: "Add a dish, or replace the dish with the same id",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := parsePrice(args[2])
			if err != nil {
				return err
			}

			sess, _, err := opts.openSession(cmd)
			if err != nil {
				return err
			}
			if err := sess.Service.AddDish(args[0], args[1], price, !unavailable); err != nil {
				return fmt.Errorf("adding dish: %w", err)
			}
			if err := sess.Commit(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Dish %s added\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&unavailable, "unavailable", false, "Add the dish as not orderable")

	return cmd
}

func newDishRemoveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a dish and strip it from every order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _, err := opts.openSession(cmd)
			if err != nil {
				return err
			}
			if !sess.Service.RemoveDish(args[0]) {
				fmt.Fprintf(cmd.OutOrStdout(), "Dish %s is not on the menu\n", args[0])
				return nil
			}
			if err := sess.Commit(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Dish %s removed\n", args[0])
			return nil
		},
	}
}

func newDishAvailableCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "available <id> <yes|no>",
		Short: "Set whether a dish can be ordered",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _, err := opts.openSession(cmd)
			if err != nil {
				return err
			}
			available := isYes(args[1])
			if !sess.Service.UpdateAvailability(args[0], available) {
				fmt.Fprintf(cmd.OutOrStdout(), "Dish %s is not on the menu\n", args[0])
				return nil
			}
			if err := sess.Commit(); err != nil {
				return err
			}

			state := "available"
			if !available {
				state = "unavailable"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Dish %s is now %s\n", args[0], state)
			return nil
		},
	}
}

func newDishListCmd(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, cfg, err := opts.openSession(cmd)
			if err != nil {
				return err
			}

			menu := sess.Service.Menu()
			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(menu)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderMenu(menu, cfg.Currency))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
