package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func assertContains(t *testing.T, got string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func sampleStaffView() StaffPageView {
	return StaffPageView{
		Kind:      StaffDrivers,
		PageURL:   "/drivers",
		TableURL:  "/drivers/table",
		CreateURL: "/drivers/create",
		Query:     "van",
		Total:     3,
		Rows: []StaffRow{{
			ID:          "drv-1",
			Name:        "Igor <Petrov>",
			Email:       "igor@example.com",
			Phone:       "555",
			Vehicle:     "Van",
			StatusLabel: "Locked",
			StatusBadge: BadgeError,
			Locked:      true,
			AddedAt:     "2025-01-20",
			Count:       "412",
			ToggleURL:   "/drivers/drv-1/toggle",
			ToggleLabel: "Unlock",
			DeleteURL:   "/drivers/drv-1/delete",
			DeleteLabel: "Delete",
		}},
	}
}

func TestStaffTableRendersRows(t *testing.T) {
	got := renderString(t, StaffTable(sampleStaffView(), nil))

	assertContains(t, got,
		`id="drivers-table"`,
		`id="drivers-row-drv-1"`,
		`class="row-locked"`,
		"Igor &lt;Petrov&gt;",
		`<td>Van</td>`,
		`class="badge badge-error"`,
		`action="/drivers/drv-1/toggle"`,
		`hx-post="/drivers/drv-1/delete"`,
		`name="q" value="van"`,
		`class="btn btn-sm btn-danger">Delete</button>`,
		"field.deliveries",
	)
	if strings.Contains(got, "Igor <Petrov>") {
		t.Fatal("name was not escaped")
	}
}

func TestStaffTableEmptyState(t *testing.T) {
	view := sampleStaffView()
	view.Kind = StaffManagers
	view.Rows = nil

	got := renderString(t, StaffTable(view, nil))
	assertContains(t, got, `id="managers-table"`, "managers.empty")
	if strings.Contains(got, "<table") {
		t.Fatal("empty table should not render a table element")
	}
}

func TestStaffAddDialogEchoesFormWhenOpen(t *testing.T) {
	view := sampleStaffView()
	view.FormOpen = true
	view.FormError = "Vehicle is required"
	view.Form = StaffForm{Name: "Zoe", Email: "zoe@example.com"}

	got := renderString(t, StaffAddDialog(view, nil))
	assertContains(t, got,
		`<dialog class="modal" id="drivers-dialog" open>`,
		`name="name" value="Zoe"`,
		`name="vehicle"`,
		"Vehicle is required",
	)
}

func TestManagersDialogOmitsVehicle(t *testing.T) {
	view := sampleStaffView()
	view.Kind = StaffManagers

	got := renderString(t, StaffAddDialog(view, nil))
	if strings.Contains(got, `name="vehicle"`) {
		t.Fatal("managers form should not ask for a vehicle")
	}
	if strings.Contains(got, " open>") {
		t.Fatal("dialog should start closed")
	}
}

func TestBarChartUsesPercentHeights(t *testing.T) {
	got := renderString(t, BarChart(ChartView{
		ID:    "orders",
		Title: "Orders",
		Bars: []ChartBar{
			{Label: "Mon", Value: "50", Percent: 50},
			{Label: "Tue", Value: "100", Percent: 100},
		},
	}))
	assertContains(t, got, `id="chart-orders"`, `style="height: 50%"`, `style="height: 100%"`, `title="Tue: 100"`)
}

func TestLayoutWrapsContentInMain(t *testing.T) {
	page := PageContext{Lang: "pt-BR", CurrentPath: "/orders", ActiveTab: TabOrders}
	got := renderString(t, Layout(page, "Orders", templ.Raw("<p>body</p>")))

	assertContains(t, got,
		`<html lang="pt-BR">`,
		"<title>Orders | Dispatch Desk</title>",
		`<main id="main" class="container"><p>body</p></main>`,
		`href="/static/admin.css"`,
		`class="tab tab-active" aria-selected="true">nav.orders`,
		"lang=en-US",
		`<script src="`+HTMXFallbackSrc+`" defer></script>`,
	)

	page.HTMXSrc = "/static/htmx.min.js"
	got = renderString(t, Layout(page, "Orders", templ.Raw("")))
	assertContains(t, got, `<script src="/static/htmx.min.js" defer></script>`)
}

func TestDashboardPageLazyLoadsContent(t *testing.T) {
	got := renderString(t, DashboardPage(nil))
	assertContains(t, got, `hx-get="/dashboard/content"`, "dashboard.loading")
}

func TestOrdersPageRendersStatusFilter(t *testing.T) {
	view := OrdersPageView{
		Status: "pending",
		StatusOptions: []StatusOption{
			{Value: "", Label: "All"},
			{Value: "pending", Label: "Pending", Selected: true},
		},
		Rows:  []OrderRow{{ID: "ord-1", Code: "ORD-1001", Client: "Cafe", StatusLabel: "Pending", StatusBadge: BadgeWarning}},
		Total: 14,
	}
	got := renderString(t, OrdersPage(view, nil))
	assertContains(t, got,
		`<option value="pending" selected>Pending</option>`,
		`hx-get="/orders/table"`,
		`id="orders-row-ord-1"`,
		`class="badge badge-warning"`,
	)
}

func TestSearchFormLiveUpdatesTarget(t *testing.T) {
	got := renderString(t, SearchForm("managers-search", "/managers", "/managers/table", "#managers-table", "ana", "Search", nil, nil))

	assertContains(t, got,
		`id="managers-search"`,
		`action="/managers"`,
		`hx-get="/managers/table"`,
		`hx-target="#managers-table"`,
		`hx-indicator="#managers-search-indicator"`,
		`value="ana"`,
		`class="loading loading-ring loading-md"`,
	)
}
