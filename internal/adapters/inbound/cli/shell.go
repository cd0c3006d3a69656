package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zestyzomato/zesty/internal/adapters/outbound/tui"
	"github.com/zestyzomato/zesty/internal/application"
	"github.com/zestyzomato/zesty/internal/domain"
)

const shellMenu = `
Welcome to Zesty Zomato
1. Add Dish
2. Remove Dish
3. Update Dish Availability
4. Take Order
5. Update Order Status
6. Review Orders
7. Calculate Order Total Price
8. Save and Exit
`

// errInputClosed ends the shell when stdin runs out.
var errInputClosed = errors.New("input closed")

func newShellCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run the interactive numbered menu",
		Long:  "Start an interactive session. State is loaded once and saved when you choose \"Save and Exit\"; closing input exits without saving.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, cfg, err := opts.openSession(cmd)
			if err != nil {
				return err
			}
			sh := &shell{
				in:       bufio.NewScanner(cmd.InOrStdin()),
				out:      cmd.OutOrStdout(),
				svc:      sess.Service,
				currency: cfg.Currency,
			}
			return sh.run(sess.Commit)
		},
	}
}

type shell struct {
	in       *bufio.Scanner
	out      io.Writer
	svc      *application.OrderingService
	currency string
}

func (s *shell) run(save func() error) error {
	for {
		fmt.Fprint(s.out, shellMenu)
		choice, err := s.prompt("Enter your choice: ")
		if err != nil {
			fmt.Fprintln(s.out, "\nInput closed. Exiting without saving.")
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = s.addDish()
		case "2":
			err = s.removeDish()
		case "3":
			err = s.updateAvailability()
		case "4":
			err = s.takeOrder()
		case "5":
			err = s.updateStatus()
		case "6":
			err = s.reviewOrders()
		case "7":
			err = s.orderTotal()
		case "8":
			// A failed save keeps the session open so nothing is lost.
			if err := save(); err != nil {
				fmt.Fprintln(s.out, "Error:", err)
				continue
			}
			fmt.Fprintln(s.out, "Data saved. Exiting Zesty Zomato. Have a great day!")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
			continue
		}

		if errors.Is(err, errInputClosed) {
			fmt.Fprintln(s.out, "\nInput closed. Exiting without saving.")
			return nil
		}
		if err != nil {
			fmt.Fprintln(s.out, "Error:", err)
		}
	}
}

func (s *shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return s.in.Text(), nil
}

// prompts asks each label in turn and stops at the first read error.
func (s *shell) prompts(labels ...string) ([]string, error) {
	answers := make([]string, 0, len(labels))
	for _, l := range labels {
		a, err := s.prompt(l)
		if err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, nil
}

func (s *shell) addDish() error {
	a, err := s.prompts("Enter Dish ID: ", "Enter Dish Name: ", "Enter Price: ", "Is Dish Available? (yes/no): ")
	if err != nil {
		return err
	}
	price, err := parsePrice(a[2])
	if err != nil {
		return err
	}
	if err := s.svc.AddDish(strings.TrimSpace(a[0]), a[1], price, isYes(a[3])); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "New dish added.")
	return nil
}

func (s *shell) removeDish() error {
	id, err := s.prompt("Enter Dish ID to remove: ")
	if err != nil {
		return err
	}
	if s.svc.RemoveDish(strings.TrimSpace(id)) {
		fmt.Fprintln(s.out, "Dish removed.")
	}
	return nil
}

func (s *shell) updateAvailability() error {
	a, err := s.prompts("Enter Dish ID to update availability: ", "Is Dish Available? (yes/no): ")
	if err != nil {
		return err
	}
	if s.svc.UpdateAvailability(strings.TrimSpace(a[0]), isYes(a[1])) {
		fmt.Fprintln(s.out, "Availability updated.")
	}
	return nil
}

func (s *shell) takeOrder() error {
	a, err := s.prompts("Enter Customer Name: ", "Enter Dish IDs (comma-separated): ")
	if err != nil {
		return err
	}
	order, err := s.svc.TakeOrder(a[0], domain.ParseDishIDs(a[1]))
	if err != nil {
		var due *domain.DishUnavailableError
		if errors.As(err, &due) {
			return fmt.Errorf("dish %s is not available", due.DishID)
		}
		return err
	}
	fmt.Fprintf(s.out, "Order %d received.\n", order.ID)
	return nil
}

func (s *shell) updateStatus() error {
	a, err := s.prompts("Enter Order ID: ", "Enter New Status: ")
	if err != nil {
		return err
	}
	id, err := parseOrderID(a[0])
	if err != nil {
		return err
	}
	return s.svc.UpdateOrderStatus(id, a[1])
}

func (s *shell) reviewOrders() error {
	status, err := s.prompt("Enter status to filter (press Enter to skip): ")
	if err != nil {
		return err
	}
	filter := domain.AnyStatus()
	if status != "" {
		filter = domain.StatusIs(status)
	}
	fmt.Fprint(s.out, tui.RenderOrders(slices.Collect(s.svc.ReviewOrders(filter))))
	return nil
}

func (s *shell) orderTotal() error {
	raw, err := s.prompt("Enter Order ID: ")
	if err != nil {
		return err
	}
	id, err := parseOrderID(raw)
	if err != nil {
		return err
	}
	total, err := s.svc.CalculateOrderTotal(id)
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, tui.RenderTotal(id, total, s.currency))
	return nil
}
