package admin

import (
	"context"
	"fmt"
	"net/http"

	"github.com/louisbranch/dispatchdesk/internal/analytics"
	"github.com/louisbranch/dispatchdesk/internal/fleet"
	"github.com/louisbranch/dispatchdesk/internal/services/admin/templates"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/message"
)

// handleDashboard renders the dashboard shell; content loads lazily.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	pageCtx := h.pageContext(lang, loc, r)
	renderPage(
		w,
		r,
		templates.DashboardPage(loc),
		templates.DashboardFullPage(pageCtx),
		htmxLocalizedPageTitle(loc, "title.dashboard"),
	)
}

// handleDashboardContent renders summary cards and charts.
func (h *Handler) handleDashboardContent(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	view, err := h.dashboardView(r.Context(), loc)
	if err != nil {
		writeDomainError(w, err, lang, "load dashboard")
		return
	}
	renderPage(w, r, templates.DashboardContent(view, loc), nil, "")
}

func (h *Handler) dashboardView(ctx context.Context, loc *message.Printer) (templates.DashboardView, error) {
	var (
		managers []fleet.Manager
		drivers  []fleet.Driver
		orders   []fleet.Order
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		if managers, err = h.store.ListManagers(groupCtx, ""); err != nil {
			return fmt.Errorf("list managers: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		if drivers, err = h.store.ListDrivers(groupCtx, ""); err != nil {
			return fmt.Errorf("list drivers: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		var err error
		if orders, err = h.store.ListOrders(groupCtx, fleet.OrderFilter{}); err != nil {
			return fmt.Errorf("list orders: %w", err)
		}
		return nil
	})
	if err := group.Wait(); err != nil {
		return templates.DashboardView{}, err
	}

	summary := analytics.Summarize(managers, drivers, orders)
	return buildDashboardView(summary, loc), nil
}

func buildDashboardView(summary analytics.Summary, loc *message.Printer) templates.DashboardView {
	revenue := analytics.SampleRevenue()
	ordersSeries := analytics.SampleOrders()
	users := analytics.SampleUserGrowth()

	money := func(value int64) string { return formatMoney(fleet.Amount(value), loc) }
	count := func(value int64) string { return formatCount(value, loc) }

	revenueGrowth := analytics.Growth(revenue)
	ordersGrowth := analytics.Growth(ordersSeries)

	view := templates.DashboardView{
		Cards: []templates.SummaryCard{
			{
				Label:   loc.Sprintf("dashboard.total_revenue"),
				Value:   formatMoney(summary.TotalRevenue, loc),
				Trend:   loc.Sprintf("dashboard.growth", formatGrowth(revenueGrowth, loc)),
				TrendUp: revenueGrowth >= 0,
			},
			{
				Label:   loc.Sprintf("dashboard.total_orders"),
				Value:   count(int64(summary.OrderCount)),
				Trend:   loc.Sprintf("dashboard.growth", formatGrowth(ordersGrowth, loc)),
				TrendUp: ordersGrowth >= 0,
			},
			{
				Label:  loc.Sprintf("dashboard.active_managers"),
				Value:  count(int64(summary.Managers.Active)),
				Detail: loc.Sprintf("dashboard.locked_count", summary.Managers.Locked),
			},
			{
				Label:  loc.Sprintf("dashboard.active_drivers"),
				Value:  count(int64(summary.Drivers.Active)),
				Detail: loc.Sprintf("dashboard.locked_count", summary.Drivers.Locked),
			},
		},
	}

	revenueChart := buildChart(analytics.SeriesRevenue, loc.Sprintf("dashboard.chart_revenue"), revenue, money)
	ordersChart := buildChart(analytics.SeriesOrders, loc.Sprintf("dashboard.chart_orders"), ordersSeries, count)
	usersChart := buildChart(analytics.SeriesUserGrowth, loc.Sprintf("dashboard.chart_user_growth"), users, count)
	// User growth is cumulative, so the headline is the latest point.
	usersChart.Total = ""
	if n := len(users.Points); n > 0 {
		usersChart.Total = count(users.Points[n-1].Value)
	}
	statusChart := buildChart("orders_by_status", loc.Sprintf("dashboard.orders_by_status"), summary.StatusSeries(), count)
	for i, status := range fleet.OrderStatuses() {
		if i < len(statusChart.Bars) {
			statusChart.Bars[i].Label, _ = formatOrderStatus(status, loc)
		}
	}

	view.Charts = []templates.ChartView{revenueChart, ordersChart, usersChart, statusChart}
	return view
}
