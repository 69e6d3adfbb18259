package admin

import (
	"time"

	"github.com/louisbranch/dispatchdesk/internal/analytics"
	"github.com/louisbranch/dispatchdesk/internal/fleet"
	routepath "github.com/louisbranch/dispatchdesk/internal/services/admin/routepath"
	"github.com/louisbranch/dispatchdesk/internal/services/admin/templates"
	"golang.org/x/text/message"
)

// dateLayout renders record dates.
const dateLayout = "2006-01-02"

func formatDate(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.UTC().Format(dateLayout)
}

// formatMoney renders cents with locale-aware separators.
func formatMoney(amount fleet.Amount, loc *message.Printer) string {
	return loc.Sprintf("$%.2f", amount.Dollars())
}

func formatCount(value int64, loc *message.Printer) string {
	return loc.Sprintf("%d", value)
}

// formatGrowth renders a signed percentage such as "+9.5%".
func formatGrowth(growth float64, loc *message.Printer) string {
	return loc.Sprintf("%+.1f%%", growth)
}

func formatStaffStatus(status fleet.Status, loc *message.Printer) (string, string) {
	if status.IsLocked() {
		return loc.Sprintf("status.locked"), templates.BadgeError
	}
	return loc.Sprintf("status.active"), templates.BadgeSuccess
}

func formatOrderStatus(status fleet.OrderStatus, loc *message.Printer) (string, string) {
	switch status {
	case fleet.OrderPending:
		return loc.Sprintf("status.pending"), templates.BadgeWarning
	case fleet.OrderProcessing:
		return loc.Sprintf("status.processing"), templates.BadgeInfo
	case fleet.OrderDelivered:
		return loc.Sprintf("status.delivered"), templates.BadgeSuccess
	default:
		return string(status), templates.BadgeNeutral
	}
}

func toggleLabel(status fleet.Status, loc *message.Printer) string {
	if status.IsLocked() {
		return loc.Sprintf("action.unlock")
	}
	return loc.Sprintf("action.lock")
}

// buildManagerRows formats managers for the staff table.
func buildManagerRows(managers []fleet.Manager, loc *message.Printer) []templates.StaffRow {
	rows := make([]templates.StaffRow, 0, len(managers))
	for _, manager := range managers {
		statusLabel, badge := formatStaffStatus(manager.Status, loc)
		rows = append(rows, templates.StaffRow{
			ID:            manager.ID,
			Name:          manager.Name,
			Email:         manager.Email,
			Phone:         manager.Phone,
			StatusLabel:   statusLabel,
			StatusBadge:   badge,
			Locked:        manager.Status.IsLocked(),
			AddedAt:       formatDate(manager.AddedAt),
			Count:         formatCount(int64(manager.ManagedOrders), loc),
			ToggleURL:     routepath.ManagerToggle(manager.ID),
			ToggleLabel:   toggleLabel(manager.Status, loc),
			DeleteURL:     routepath.ManagerDelete(manager.ID),
			DeleteLabel:   loc.Sprintf("action.delete"),
			DeleteConfirm: loc.Sprintf("action.confirm_delete", manager.Name),
		})
	}
	return rows
}

// buildDriverRows formats drivers for the staff table.
func buildDriverRows(drivers []fleet.Driver, loc *message.Printer) []templates.StaffRow {
	rows := make([]templates.StaffRow, 0, len(drivers))
	for _, driver := range drivers {
		statusLabel, badge := formatStaffStatus(driver.Status, loc)
		rows = append(rows, templates.StaffRow{
			ID:            driver.ID,
			Name:          driver.Name,
			Email:         driver.Email,
			Phone:         driver.Phone,
			Vehicle:       driver.Vehicle,
			StatusLabel:   statusLabel,
			StatusBadge:   badge,
			Locked:        driver.Status.IsLocked(),
			AddedAt:       formatDate(driver.AddedAt),
			Count:         formatCount(int64(driver.CompletedDeliveries), loc),
			ToggleURL:     routepath.DriverToggle(driver.ID),
			ToggleLabel:   toggleLabel(driver.Status, loc),
			DeleteURL:     routepath.DriverDelete(driver.ID),
			DeleteLabel:   loc.Sprintf("action.delete"),
			DeleteConfirm: loc.Sprintf("action.confirm_delete", driver.Name),
		})
	}
	return rows
}

// buildOrderRows formats orders for the orders table.
func buildOrderRows(orders []fleet.Order, loc *message.Printer) []templates.OrderRow {
	rows := make([]templates.OrderRow, 0, len(orders))
	for _, order := range orders {
		statusLabel, badge := formatOrderStatus(order.Status, loc)
		rows = append(rows, templates.OrderRow{
			ID:          order.ID,
			Code:        order.Code,
			Client:      order.Client,
			Items:       formatCount(int64(order.Items), loc),
			Total:       formatMoney(order.Total, loc),
			StatusLabel: statusLabel,
			StatusBadge: badge,
			Manager:     order.Manager,
			Driver:      order.Driver,
			Date:        formatDate(order.Date),
		})
	}
	return rows
}

// buildStatusOptions lists the order status filter choices.
func buildStatusOptions(selected fleet.OrderStatus, loc *message.Printer) []templates.StatusOption {
	options := []templates.StatusOption{{
		Value:    "",
		Label:    loc.Sprintf("filter.status_all"),
		Selected: selected == "",
	}}
	for _, status := range fleet.OrderStatuses() {
		label, _ := formatOrderStatus(status, loc)
		options = append(options, templates.StatusOption{
			Value:    string(status),
			Label:    label,
			Selected: status == selected,
		})
	}
	return options
}

// buildChart converts a series into proportional bars.
func buildChart(id, title string, series analytics.Series, format func(int64) string) templates.ChartView {
	chart := templates.ChartView{
		ID:    id,
		Title: title,
		Total: format(series.Total()),
	}
	for _, bar := range analytics.Bars(series) {
		chart.Bars = append(chart.Bars, templates.ChartBar{
			Label:   bar.Label,
			Value:   format(bar.Value),
			Percent: bar.Percent,
		})
	}
	return chart
}
