package templates

import routepath "github.com/louisbranch/dispatchdesk/internal/services/admin/routepath"

// Navigation tab identifiers.
const (
	TabDashboard = "dashboard"
	TabManagers  = "managers"
	TabDrivers   = "drivers"
	TabOrders    = "orders"
)

// htmxConfig lets 422 responses swap while still counting as failed requests.
const htmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"[23]..","swap":true},{"code":"422","swap":true,"error":true},{"code":"[45]..","swap":false,"error":true}]}`

// NavTab is one entry of the top navigation.
type NavTab struct {
	ID     string
	Label  string
	URL    string
	Active bool
}

// AppName returns the product name shown in titles.
func AppName() string {
	return "Dispatch Desk"
}

// ComposeAdminPageTitle joins a page title with the product name.
func ComposeAdminPageTitle(title string) string {
	if title == "" {
		return AppName()
	}
	return title + " | " + AppName()
}

// NavTabs lists the navigation tabs with active highlighted.
func NavTabs(active string, loc Localizer) []NavTab {
	tabs := []NavTab{
		{ID: TabDashboard, Label: T(loc, "nav.dashboard"), URL: routepath.Root},
		{ID: TabManagers, Label: T(loc, "nav.managers"), URL: routepath.Managers},
		{ID: TabDrivers, Label: T(loc, "nav.drivers"), URL: routepath.Drivers},
		{ID: TabOrders, Label: T(loc, "nav.orders"), URL: routepath.Orders},
	}
	for i := range tabs {
		tabs[i].Active = tabs[i].ID == active
	}
	return tabs
}
