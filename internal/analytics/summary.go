package analytics

import "github.com/louisbranch/dispatchdesk/internal/fleet"

// StaffCounts splits a staff list by status.
type StaffCounts struct {
	Active int
	Locked int
}

// Total returns the number of records counted.
func (c StaffCounts) Total() int {
	return c.Active + c.Locked
}

// Summary aggregates the headline dashboard numbers.
type Summary struct {
	TotalRevenue   fleet.Amount
	OrderCount     int
	OrdersByStatus map[fleet.OrderStatus]int
	Managers       StaffCounts
	Drivers        StaffCounts
}

// Summarize derives the dashboard summary from the current record lists.
func Summarize(managers []fleet.Manager, drivers []fleet.Driver, orders []fleet.Order) Summary {
	summary := Summary{
		OrderCount:     len(orders),
		OrdersByStatus: make(map[fleet.OrderStatus]int, len(fleet.OrderStatuses())),
	}
	for _, status := range fleet.OrderStatuses() {
		summary.OrdersByStatus[status] = 0
	}
	for _, order := range orders {
		summary.TotalRevenue += order.Total
		summary.OrdersByStatus[order.Status]++
	}
	for _, manager := range managers {
		countStatus(&summary.Managers, manager.Status)
	}
	for _, driver := range drivers {
		countStatus(&summary.Drivers, driver.Status)
	}
	return summary
}

// StatusSeries turns the per-status order counts into a chartable series.
func (s Summary) StatusSeries() Series {
	series := Series{Key: "orders_by_status"}
	for _, status := range fleet.OrderStatuses() {
		series.Points = append(series.Points, Point{Label: string(status), Value: int64(s.OrdersByStatus[status])})
	}
	return series
}

func countStatus(counts *StaffCounts, status fleet.Status) {
	if status.IsLocked() {
		counts.Locked++
		return
	}
	counts.Active++
}
