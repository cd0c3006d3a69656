package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zestyzomato/zesty/internal/domain"
)

// ── warm kitchen palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2)

	statusColors = map[string]lipgloss.Color{
		domain.StatusReceived: warning,
		"preparing":           accent,
		"ready":               lipgloss.Color("#A3E635"), // lime
		"served":              success,
		"delivered":           success,
		"cancelled":           danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 56))
)

// RenderMenu formats the menu as an aligned list.
func RenderMenu(dishes []domain.Dish, currency string) string {
	var b strings.Builder

	b.WriteString("  " + headerStyle.Render("Menu") + "  " + dimStyle.Render(fmt.Sprintf("(%d dishes)", len(dishes))) + "\n")
	b.WriteString("  " + separatorLine + "\n")

	if len(dishes) == 0 {
		b.WriteString("  " + dimStyle.Render("No dishes on the menu.") + "\n")
		return b.String()
	}

	for _, d := range dishes {
		avail := passStyle.Render("available")
		if !d.Available {
			avail = failStyle.Render("unavailable")
		}
		fmt.Fprintf(&b, "  %s %s %s  %s\n",
			titleStyle.Render(padRight(d.ID, 8)),
			padRight(d.Name, 24),
			padLeft(FormatMoney(d.Price, currency), 10),
			avail,
		)
	}
	return b.String()
}

// RenderOrders formats orders the way the review screen lists them.
func RenderOrders(orders []domain.Order) string {
	var b strings.Builder

	b.WriteString("  " + headerStyle.Render("Orders") + "  " + dimStyle.Render(fmt.Sprintf("(%d)", len(orders))) + "\n")
	b.WriteString("  " + separatorLine + "\n")

	if len(orders) == 0 {
		b.WriteString("  " + dimStyle.Render("No orders found.") + "\n")
		return b.String()
	}

	for _, o := range orders {
		renderOrderLine(&b, o)
	}
	return b.String()
}

func renderOrderLine(b *strings.Builder, o domain.Order) {
	fmt.Fprintf(b, "  Order ID: %s  Customer: %s  Status: %s  %s\n",
		titleStyle.Render(fmt.Sprintf("%-4d", o.ID)),
		padRight(o.CustomerName, 16),
		StatusLabel(o.Status),
		dimStyle.Render(strings.Join(o.DishIDs, ", ")),
	)
}

// RenderOrder shows a single order in a box.
func RenderOrder(o domain.Order) string {
	lines := []string{
		titleStyle.Render(fmt.Sprintf("Order %d", o.ID)),
		"Customer: " + o.CustomerName,
		"Status:   " + StatusLabel(o.Status),
	}
	if len(o.DishIDs) > 0 {
		lines = append(lines, "Dishes:   "+strings.Join(o.DishIDs, ", "))
	} else {
		lines = append(lines, "Dishes:   "+dimStyle.Render("none"))
	}
	return boxStyle.Render(strings.Join(lines, "\n")) + "\n"
}

// RenderTotal formats an order total.
func RenderTotal(orderID int, total float64, currency string) string {
	return fmt.Sprintf("Total Price for Order ID %d: %s\n", orderID, titleStyle.Render(FormatMoney(total, currency)))
}

// RenderHistory lists the recorded status changes of one order, oldest first.
func RenderHistory(orderID int, entries []domain.StatusEntry) string {
	var b strings.Builder

	b.WriteString("  " + headerStyle.Render(fmt.Sprintf("Order %d history", orderID)) + "\n")
	b.WriteString("  " + separatorLine + "\n")

	if len(entries) == 0 {
		b.WriteString("  " + dimStyle.Render("No status changes recorded.") + "\n")
		return b.String()
	}

	for _, e := range entries {
		fmt.Fprintf(&b, "  %s  %s -> %s\n", dimStyle.Render(e.Timestamp), StatusLabel(e.From), StatusLabel(e.To))
	}
	return b.String()
}

// StatusLabel colors a status. Unknown labels are rendered plain.
func StatusLabel(status string) string {
	if status == "" {
		return dimStyle.Render("(none)")
	}
	if c, ok := statusColors[status]; ok {
		return lipgloss.NewStyle().Foreground(c).Render(status)
	}
	return status
}

// FormatMoney renders an amount with two decimals, e.g. "$11.00".
func FormatMoney(amount float64, currency string) string {
	return fmt.Sprintf("%s%.2f", currency, amount)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
