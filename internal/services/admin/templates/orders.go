package templates

import (
	"github.com/a-h/templ"
	routepath "github.com/louisbranch/dispatchdesk/internal/services/admin/routepath"
)

const ordersTableID = "orders-table"

var orderHeaderKeys = []string{"field.code", "field.client", "field.items", "field.total", "field.status", "field.manager", "field.driver", "field.date"}

// OrderRow is a formatted order row.
type OrderRow struct {
	ID          string
	Code        string
	Client      string
	Items       string
	Total       string
	StatusLabel string
	StatusBadge string
	Manager     string
	Driver      string
	Date        string
}

// StatusOption is one entry of the order status filter.
type StatusOption struct {
	Value    string
	Label    string
	Selected bool
}

// OrdersPageView provides data for the orders page and table.
type OrdersPageView struct {
	Query         string
	Status        string
	StatusOptions []StatusOption
	Message       string
	Rows          []OrderRow
	Total         int
}

// OrdersPage renders the orders heading, filters, and table.
func OrdersPage(view OrdersPageView, loc Localizer) templ.Component {
	return component(func(out *htmlWriter) {
		out.render(Heading(PageHeading{Title: T(loc, "title.orders")}))
		out.raw(`<div class="toolbar">`)
		out.render(SearchForm("orders-search", routepath.Orders, routepath.OrdersTable, "#"+ordersTableID, view.Query, T(loc, "search.orders_placeholder"), loc, statusSelect(view.StatusOptions, loc)))
		out.raw(`</div>`)
		out.render(OrdersTable(view, loc))
	})
}

// OrdersFullPage renders the orders page inside the layout.
func OrdersFullPage(view OrdersPageView, page PageContext) templ.Component {
	page.ActiveTab = TabOrders
	return Layout(page, T(page.Loc, "title.orders"), OrdersPage(view, page.Loc))
}

func statusSelect(options []StatusOption, loc Localizer) templ.Component {
	return component(func(out *htmlWriter) {
		out.raw(`<label><span class="sr-only">`)
		out.text(T(loc, "field.status"))
		out.raw(`</span><select name="status">`)
		for _, option := range options {
			out.raw(`<option`)
			out.attr("value", option.Value)
			out.flag("selected", option.Selected)
			out.raw(`>`)
			out.text(option.Label)
			out.raw(`</option>`)
		}
		out.raw(`</select></label>`)
	})
}
