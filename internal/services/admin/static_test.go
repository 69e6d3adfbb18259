package admin

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/louisbranch/dispatchdesk/internal/services/admin/templates"
)

func TestResolveHTMXSrc(t *testing.T) {
	t.Parallel()

	vendored := fstest.MapFS{htmxAsset: &fstest.MapFile{Data: []byte("htmx")}}
	empty := fstest.MapFS{"admin.css": &fstest.MapFile{Data: []byte("body{}")}}

	tests := []struct {
		name       string
		staticFS   fstest.MapFS
		configured string
		want       string
	}{
		{name: "configured wins", staticFS: vendored, configured: " /assets/htmx.js ", want: "/assets/htmx.js"},
		{name: "vendored copy", staticFS: vendored, want: "/static/htmx.min.js"},
		{name: "pinned release", staticFS: empty, want: templates.HTMXFallbackSrc},
		{name: "no static fs", want: templates.HTMXFallbackSrc},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var got string
			if tc.staticFS == nil {
				got = resolveHTMXSrc(nil, tc.configured)
			} else {
				got = resolveHTMXSrc(tc.staticFS, tc.configured)
			}
			if got != tc.want {
				t.Fatalf("resolveHTMXSrc = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestStaticMimeSetsJavaScriptType(t *testing.T) {
	t.Parallel()

	handler := withStaticMime(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/static/htmx.min.js", nil))

	if got := recorder.Header().Get("Content-Type"); got != "text/javascript; charset=utf-8" {
		t.Fatalf("Content-Type = %q", got)
	}
}

func TestPagesLoadConfiguredHTMX(t *testing.T) {
	t.Parallel()

	handler, _ := newTestHandler(t, WithHTMXSrc("/static/vendor/htmx.js"))
	recorder := serve(handler, newGet("/orders", false))

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusOK)
	}
	assertContains(t, recorder.Body.String(), `<script src="/static/vendor/htmx.js" defer></script>`)
	assertNotContains(t, recorder.Body.String(), "unpkg.com")
}
