package route

import (
	"net/http"
	"strings"
)

// RedirectTrailingSlash sends "/orders/?status=pending" to "/orders?status=pending".
// The query string survives the redirect so filtered table links keep their filters.
//
// It returns true when a redirect was written; callers must stop handling the request.
func RedirectTrailingSlash(w http.ResponseWriter, r *http.Request) bool {
	if w == nil || r == nil || r.URL == nil {
		return false
	}

	canonical, changed := canonicalPath(r.URL.Path)
	if !changed {
		return false
	}
	if r.URL.RawQuery != "" {
		canonical += "?" + r.URL.RawQuery
	}

	http.Redirect(w, r, canonical, http.StatusMovedPermanently)
	return true
}

func canonicalPath(path string) (string, bool) {
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" {
		trimmed = "/"
	}
	return trimmed, trimmed != path
}
