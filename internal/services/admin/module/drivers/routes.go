package drivers

import (
	"net/http"

	sharedpath "github.com/louisbranch/dispatchdesk/internal/services/admin/module/sharedpath"
	routepath "github.com/louisbranch/dispatchdesk/internal/services/admin/routepath"
	sharedroute "github.com/louisbranch/dispatchdesk/internal/services/shared/route"
)

// Service defines driver route handlers consumed by this route module.
type Service interface {
	HandleDriversPage(w http.ResponseWriter, r *http.Request)
	HandleDriversTable(w http.ResponseWriter, r *http.Request)
	HandleDriverCreate(w http.ResponseWriter, r *http.Request)
	HandleDriverToggle(w http.ResponseWriter, r *http.Request, driverID string)
	HandleDriverDelete(w http.ResponseWriter, r *http.Request, driverID string)
}

// RegisterRoutes wires driver routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Drivers, service.HandleDriversPage)
	mux.HandleFunc(routepath.DriversTable, service.HandleDriversTable)
	mux.HandleFunc(routepath.DriversCreate, service.HandleDriverCreate)
	mux.HandleFunc(routepath.DriversPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleDriverPath(w, r, service)
	})
}

// HandleDriverPath parses driver record subroutes and dispatches to service handlers.
func HandleDriverPath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}

	id, action, ok := sharedpath.RecordAction(r.URL.Path, routepath.DriversPrefix)
	if !ok {
		http.NotFound(w, r)
		return
	}
	switch action {
	case routepath.ActionToggle:
		service.HandleDriverToggle(w, r, id)
	case routepath.ActionDelete:
		service.HandleDriverDelete(w, r, id)
	default:
		http.NotFound(w, r)
	}
}
