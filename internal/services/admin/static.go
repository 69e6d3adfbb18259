package admin

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"

	routepath "github.com/louisbranch/dispatchdesk/internal/services/admin/routepath"
	"github.com/louisbranch/dispatchdesk/internal/services/admin/templates"
)

//go:generate curl -fsSL -o static/htmx.min.js https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js

// htmxAsset is the vendored htmx build inside the static directory.
const htmxAsset = "htmx.min.js"

//go:embed static
var staticAssets embed.FS

func adminStaticFS() (fs.FS, error) {
	return fs.Sub(staticAssets, "static")
}

// resolveHTMXSrc prefers an explicit source, then the vendored asset, then
// the pinned release.
func resolveHTMXSrc(staticFS fs.FS, configured string) string {
	if configured = strings.TrimSpace(configured); configured != "" {
		return configured
	}
	if staticFS != nil {
		if _, err := fs.Stat(staticFS, htmxAsset); err == nil {
			return routepath.StaticPrefix + htmxAsset
		}
	}
	return templates.HTMXFallbackSrc
}

func withStaticMime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch path := strings.ToLower(r.URL.Path); {
		case strings.HasSuffix(path, ".css"):
			w.Header().Set("Content-Type", "text/css; charset=utf-8")
		case strings.HasSuffix(path, ".js"):
			w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
		case strings.HasSuffix(path, ".svg"):
			w.Header().Set("Content-Type", "image/svg+xml")
		}
		w.Header().Set("Cache-Control", "public, max-age=3600")
		next.ServeHTTP(w, r)
	})
}
