package dashboard

import (
	"net/http"

	routepath "github.com/louisbranch/dispatchdesk/internal/services/admin/routepath"
	sharedroute "github.com/louisbranch/dispatchdesk/internal/services/shared/route"
)

// Service defines dashboard route handlers consumed by this route module.
type Service interface {
	HandleDashboard(w http.ResponseWriter, r *http.Request)
	HandleDashboardContent(w http.ResponseWriter, r *http.Request)
}

// RegisterRoutes wires dashboard routes into the provided mux. The root
// pattern also catches unmatched paths: trailing slashes redirect to the
// canonical path and anything else but "/" is a 404.
func RegisterRoutes(mux *http.ServeMux, service Service) {
	if mux == nil || service == nil {
		return
	}
	mux.HandleFunc(routepath.Root, func(w http.ResponseWriter, r *http.Request) {
		if sharedroute.RedirectTrailingSlash(w, r) {
			return
		}
		if r.URL.Path != routepath.Root {
			http.NotFound(w, r)
			return
		}
		service.HandleDashboard(w, r)
	})
	mux.HandleFunc(routepath.DashboardContent, service.HandleDashboardContent)
}
