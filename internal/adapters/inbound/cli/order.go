package cli

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/zestyzomato/zesty/internal/adapters/outbound/history"
	"github.com/zestyzomato/zesty/internal/adapters/outbound/tui"
	"github.com/zestyzomato/zesty/internal/domain"
)

func newOrderCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Take and track orders",
	}
	cmd.AddCommand(newOrderTakeCmd(opts))
	cmd.AddCommand(newOrderStatusCmd(opts))
	cmd.AddCommand(newOrderListCmd(opts))
	cmd.AddCommand(newOrderShowCmd(opts))
	cmd.AddCommand(newOrderTotalCmd(opts))
	cmd.AddCommand(newOrderHistoryCmd(opts))
	return cmd
}

func newOrderTakeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "take <customer> <dish ids>",
		Short: "Take an order; dish ids are comma-separated",
		Long:  "Take an order for a customer. Every dish must be on the menu and available, otherwise no order is created.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _, err := opts.openSession(cmd)
			if err != nil {
				return err
			}

			order, err := sess.Service.TakeOrder(args[0], domain.ParseDishIDs(args[1]))
			if err != nil {
				return fmt.Errorf("order rejected: %w", err)
			}
			if err := sess.Commit(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Order %d received for %s\n", order.ID, order.CustomerName)
			return nil
		},
	}
}

func newOrderStatusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status <order id> <status>",
		Short: "Set an order's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseOrderID(args[0])
			if err != nil {
				return err
			}

			sess, cfg, err := opts.openSession(cmd)
			if err != nil {
				return err
			}
			prev, err := sess.Service.Order(id)
			if err != nil {
				return err
			}
			if err := sess.Service.UpdateOrderStatus(id, args[1]); err != nil {
				return err
			}
			if err := sess.Commit(); err != nil {
				return err
			}

			// History is best-effort; the status change is already saved.
			_ = opts.statusHistory().Save(cfg.DataFile, domain.StatusEntry{
				Timestamp: time.Now().UTC().Format(time.RFC3339),
				OrderID:   id,
				From:      prev.Status,
				To:        args[1],
			})

			fmt.Fprintf(cmd.OutOrStdout(), "Order %d is now %s\n", id, args[1])
			return nil
		},
	}
}

func newOrderListCmd(opts *rootOptions) *cobra.Command {
	var (
		status     string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Review orders, optionally filtered by status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, _, err := opts.openSession(cmd)
			if err != nil {
				return err
			}

			filter := domain.AnyStatus()
			if status != "" {
				filter = domain.StatusIs(status)
			}
			orders := slices.Collect(sess.Service.ReviewOrders(filter))

			if jsonOutput {
				if orders == nil {
					orders = []domain.Order{}
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(orders)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderOrders(orders))
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Only show orders with this exact status")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func newOrderShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <order id>",
		Short: "Show a single order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseOrderID(args[0])
			if err != nil {
				return err
			}

			sess, _, err := opts.openSession(cmd)
			if err != nil {
				return err
			}
			order, err := sess.Service.Order(id)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderOrder(order))
			return nil
		},
	}
}

func newOrderTotalCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "total <order id>",
		Short: "Compute an order's total at current menu prices",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseOrderID(args[0])
			if err != nil {
				return err
			}

			sess, cfg, err := opts.openSession(cmd)
			if err != nil {
				return err
			}
			total, err := sess.Service.CalculateOrderTotal(id)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderTotal(id, total, cfg.Currency))
			return nil
		},
	}
}

func newOrderHistoryCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "history <order id>",
		Short: "Show the status changes recorded for an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseOrderID(args[0])
			if err != nil {
				return err
			}

			_, cfg, err := opts.openSession(cmd)
			if err != nil {
				return err
			}
			entries, err := opts.statusHistory().Load(cfg.DataFile)
			if err != nil {
				return fmt.Errorf("reading status history: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(id, history.ForOrder(entries, id)))
			return nil
		},
	}
}
