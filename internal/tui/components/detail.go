package components

import (
	"fmt"
	"strings"

	"github.com/codguard/codguard/internal/model"
	"github.com/codguard/codguard/internal/tui/themes"
)

// OrderDetail renders the expanded row view of one order.
type OrderDetail struct {
	theme themes.Theme
	width int
}

// NewOrderDetail creates an order detail pane.
func NewOrderDetail(theme themes.Theme) OrderDetail {
	return OrderDetail{theme: theme, width: 80}
}

// SetWidth sets the render width.
func (d *OrderDetail) SetWidth(w int) { d.width = w }

// Render draws the order's full record with its confirmation history.
func (d OrderDetail) Render(o model.Order) string {
	var b strings.Builder

	b.WriteString(d.theme.Title.Render(fmt.Sprintf("Order %s", o.OrderID)))
	b.WriteString("\n")

	line := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(d.theme.Subtitle.Render(fmt.Sprintf("%-10s", label)))
		b.WriteString(d.theme.Normal.Render(value))
		b.WriteString("\n")
	}

	line("Customer", o.Customer)
	line("Phone", o.Phone)
	line("Email", o.Email)
	line("Address", o.Address)
	line("Product", productLine(o))
	line("Amount", fmt.Sprintf("Rs. %.0f", o.TotalPrice))
	line("Tracking", o.Tracking)
	line("Placed", o.CreatedAt)

	b.WriteString(d.theme.Subtitle.Render(fmt.Sprintf("%-10s", "Status")))
	b.WriteString(d.theme.Badge(o.Status.Badge()))
	if o.DeliveryState != "" {
		b.WriteString("  ")
		b.WriteString(d.theme.Badge(o.DeliveryState.Badge()))
	}
	if o.AssignedCourier != "" && o.AssignedCourier != model.CourierNone {
		b.WriteString("  ")
		b.WriteString(d.theme.Badge(o.AssignedCourier.Badge()))
	}
	b.WriteString("\n")

	if len(o.History) > 0 {
		b.WriteString("\n")
		b.WriteString(d.theme.Bold.Render("Confirmation history"))
		b.WriteString("\n")
		for _, entry := range o.History {
			b.WriteString(d.theme.Subtitle.Render("  " + entry.Timestamp + "  "))
			b.WriteString(d.theme.Normal.Render(entry.Type + ": " + entry.Content))
			b.WriteString("\n")
		}
	}

	return d.theme.BorderedBox.Width(max(d.width-4, 20)).Render(strings.TrimRight(b.String(), "\n"))
}

func productLine(o model.Order) string {
	if o.ProductName == "" {
		return ""
	}
	if o.ProductQuantity > 1 {
		return fmt.Sprintf("%s ×%d", o.ProductName, o.ProductQuantity)
	}
	return o.ProductName
}
