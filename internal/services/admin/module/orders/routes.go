package orders

import (
	"net/http"

	routepath "github.com/louisbranch/dispatchdesk/internal/services/admin/routepath"
)

// Service defines order route handlers consumed by this route module.
type Service interface {
	HandleOrdersPage(w http.ResponseWriter, r *http.Request)
	HandleOrdersTable(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires order routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Orders, service.HandleOrdersPage)
	mux.HandleFunc(routepath.OrdersTable, service.HandleOrdersTable)
}
