package admin

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/louisbranch/dispatchdesk/internal/fleet"
	apperrors "github.com/louisbranch/dispatchdesk/internal/platform/errors"
	"github.com/louisbranch/dispatchdesk/internal/services/admin/templates"
	"golang.org/x/text/message"
)

// handleOrdersPage renders the orders page.
func (h *Handler) handleOrdersPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	view, status, err := h.ordersView(r, loc, lang)
	if err != nil {
		writeDomainError(w, err, lang, "list orders")
		return
	}
	renderPageWithStatus(
		w,
		r,
		templates.OrdersPage(view, loc),
		templates.OrdersFullPage(view, h.pageContext(lang, loc, r)),
		htmxLocalizedPageTitle(loc, "title.orders"),
		status,
	)
}

// handleOrdersTable renders the orders table filtered by q and status.
func (h *Handler) handleOrdersTable(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	view, status, err := h.ordersView(r, loc, lang)
	if err != nil {
		writeDomainError(w, err, lang, "list orders")
		return
	}
	renderPageWithStatus(w, r, templates.OrdersTable(view, loc), nil, "", status)
}

// ordersView reads the filters from r. An unknown status yields an empty
// table carrying the validation message and a 422 status.
func (h *Handler) ordersView(r *http.Request, loc *message.Printer, lang string) (templates.OrdersPageView, int, error) {
	query := formQuery(r)
	rawStatus := strings.TrimSpace(r.FormValue("status"))
	view := templates.OrdersPageView{
		Query:  query,
		Status: rawStatus,
	}

	var status fleet.OrderStatus
	if rawStatus != "" {
		parsed, err := fleet.ParseOrderStatus(rawStatus)
		if err != nil {
			total, countErr := h.countOrders(r.Context())
			if countErr != nil {
				return templates.OrdersPageView{}, 0, countErr
			}
			view.StatusOptions = buildStatusOptions("", loc)
			view.Message = apperrors.LocalizedMessage(err, lang)
			view.Total = total
			return view, http.StatusUnprocessableEntity, nil
		}
		status = parsed
	}
	view.StatusOptions = buildStatusOptions(status, loc)

	orders, err := h.store.ListOrders(r.Context(), fleet.OrderFilter{Query: query, Status: status})
	if err != nil {
		return templates.OrdersPageView{}, 0, fmt.Errorf("list orders: %w", err)
	}
	view.Rows = buildOrderRows(orders, loc)
	view.Total = len(orders)
	if query != "" || status != "" {
		total, err := h.countOrders(r.Context())
		if err != nil {
			return templates.OrdersPageView{}, 0, err
		}
		view.Total = total
	}
	return view, http.StatusOK, nil
}

func (h *Handler) countOrders(ctx context.Context) (int, error) {
	orders, err := h.store.ListOrders(ctx, fleet.OrderFilter{})
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return len(orders), nil
}
