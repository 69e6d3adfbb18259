package admin

import (
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	apperrors "github.com/louisbranch/dispatchdesk/internal/platform/errors"
	"github.com/louisbranch/dispatchdesk/internal/services/admin/templates"
	sharedhtmx "github.com/louisbranch/dispatchdesk/internal/services/shared/htmx"
	"golang.org/x/text/message"
)

// isHTMXRequest reports whether the request originated from HTMX.
func isHTMXRequest(r *http.Request) bool {
	return sharedhtmx.IsHTMXRequest(r)
}

func htmxDefaultPageTitle() string {
	return sharedhtmx.TitleTag(templates.AppName())
}

func htmxLocalizedPageTitle(loc templates.Localizer, title string, args ...any) string {
	if loc == nil {
		return htmxDefaultPageTitle()
	}
	return sharedhtmx.TitleTag(templates.ComposeAdminPageTitle(templates.T(loc, title, args...)))
}

// renderPage renders page components with consistent HTMX and non-HTMX behavior.
func renderPage(w http.ResponseWriter, r *http.Request, fragment templ.Component, full templ.Component, htmxTitle string) {
	sharedhtmx.RenderPage(w, r, fragment, full, htmxTitle)
}

func renderPageWithStatus(w http.ResponseWriter, r *http.Request, fragment templ.Component, full templ.Component, htmxTitle string, status int) {
	sharedhtmx.RenderPageWithStatus(w, r, fragment, full, htmxTitle, status)
}

// requirePost rejects non-POST requests with 405.
func requirePost(w http.ResponseWriter, r *http.Request, loc *message.Printer) bool {
	if r.Method == http.MethodPost {
		return true
	}
	w.Header().Set("Allow", http.MethodPost)
	http.Error(w, loc.Sprintf("error.method_not_allowed"), http.StatusMethodNotAllowed)
	return false
}

// redirectAfterPost sends a 303 to redirectURL; HTMX callers also get HX-Redirect.
func redirectAfterPost(w http.ResponseWriter, r *http.Request, redirectURL string) {
	if isHTMXRequest(r) {
		w.Header().Set("Location", redirectURL)
		w.Header().Set("HX-Redirect", redirectURL)
		w.WriteHeader(http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, redirectURL, http.StatusSeeOther)
}

// writeDomainError maps err to its HTTP status with a localized body.
func writeDomainError(w http.ResponseWriter, err error, lang string, action string) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Printf("%s: %v", action, err)
	}
	http.Error(w, apperrors.LocalizedMessage(err, lang), status)
}

func requireSameOrigin(w http.ResponseWriter, r *http.Request, loc *message.Printer) bool {
	if r == nil {
		http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
		return false
	}
	if origin := strings.TrimSpace(r.Header.Get("Origin")); origin != "" {
		if !sameOrigin(origin, r) {
			http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
			return false
		}
		return true
	}
	if referer := strings.TrimSpace(r.Referer()); referer != "" {
		if !sameOrigin(referer, r) {
			http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
			return false
		}
		return true
	}
	http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
	return false
}

func sameOrigin(rawURL string, r *http.Request) bool {
	if rawURL == "" || rawURL == "null" || r == nil {
		return false
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return false
	}
	if !strings.EqualFold(parsed.Host, r.Host) {
		return false
	}
	if parsed.Scheme != "" {
		return strings.EqualFold(parsed.Scheme, requestScheme(r))
	}
	return true
}

func requestScheme(r *http.Request) string {
	if r == nil {
		return "http"
	}
	if proto := strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")); proto != "" {
		parts := strings.Split(proto, ",")
		return strings.ToLower(strings.TrimSpace(parts[0]))
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

// formQuery returns the search query carried by a form post or GET request.
func formQuery(r *http.Request) string {
	return strings.TrimSpace(r.FormValue("q"))
}
