package managers

import (
	"net/http"

	sharedpath "github.com/louisbranch/dispatchdesk/internal/services/admin/module/sharedpath"
	routepath "github.com/louisbranch/dispatchdesk/internal/services/admin/routepath"
	sharedroute "github.com/louisbranch/dispatchdesk/internal/services/shared/route"
)

// Service defines manager route handlers consumed by this route module.
type Service interface {
	HandleManagersPage(w http.ResponseWriter, r *http.Request)
	HandleManagersTable(w http.ResponseWriter, r *http.Request)
	HandleManagerCreate(w http.ResponseWriter, r *http.Request)
	HandleManagerToggle(w http.ResponseWriter, r *http.Request, managerID string)
	HandleManagerDelete(w http.ResponseWriter, r *http.Request, managerID string)
}

// RegisterRoutes wires manager routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Managers, service.HandleManagersPage)
	mux.HandleFunc(routepath.ManagersTable, service.HandleManagersTable)
	mux.HandleFunc(routepath.ManagersCreate, service.HandleManagerCreate)
	mux.HandleFunc(routepath.ManagersPrefix, func(w http.ResponseWriter, r *http.Request) {
		HandleManagerPath(w, r, service)
	})
}

// HandleManagerPath parses manager record subroutes and dispatches to service handlers.
func HandleManagerPath(w http.ResponseWriter, r *http.Request, service Service) {
	if service == nil {
		http.NotFound(w, r)
		return
	}
	if sharedroute.RedirectTrailingSlash(w, r) {
		return
	}

	id, action, ok := sharedpath.RecordAction(r.URL.Path, routepath.ManagersPrefix)
	if !ok {
		http.NotFound(w, r)
		return
	}
	switch action {
	case routepath.ActionToggle:
		service.HandleManagerToggle(w, r, id)
	case routepath.ActionDelete:
		service.HandleManagerDelete(w, r, id)
	default:
		http.NotFound(w, r)
	}
}
