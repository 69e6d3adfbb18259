package httpmux

import (
	"io/fs"
	"net/http"
	"strings"

	routepath "github.com/louisbranch/dispatchdesk/internal/services/admin/routepath"
)

// MountStatic serves embedded assets under the static prefix. Directory
// paths return 404 instead of a file listing.
func MountStatic(rootMux *http.ServeMux, staticFS fs.FS, withStaticMime func(http.Handler) http.Handler) {
	if rootMux == nil || staticFS == nil {
		return
	}
	var staticHandler http.Handler = http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(staticFS)))
	if withStaticMime != nil {
		staticHandler = withStaticMime(staticHandler)
	}
	rootMux.Handle(routepath.StaticPrefix, filesOnly(staticHandler))
}

// MountAdminRoutes mounts the dashboard routes at the root path.
func MountAdminRoutes(rootMux *http.ServeMux, adminMux *http.ServeMux) {
	if rootMux == nil || adminMux == nil {
		return
	}
	rootMux.Handle(routepath.Root, adminMux)
}

func filesOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
