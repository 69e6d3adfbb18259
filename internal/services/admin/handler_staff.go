package admin

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/dispatchdesk/internal/fleet"
	"github.com/louisbranch/dispatchdesk/internal/services/admin/templates"
	"golang.org/x/text/message"
)

// Notices shown after a staff mutation redirects back to its list.
const (
	noticeAdded    = "added"
	noticeLocked   = "locked"
	noticeUnlocked = "unlocked"
	noticeDeleted  = "deleted"
)

// staffNotice localizes a mutation notice for kind. Unknown notices render nothing.
func staffNotice(loc *message.Printer, kind, notice, name string) string {
	switch notice {
	case noticeAdded, noticeLocked, noticeUnlocked:
		return loc.Sprintf(kind+"."+notice, name)
	case noticeDeleted:
		return loc.Sprintf(kind + "." + noticeDeleted)
	default:
		return ""
	}
}

func staffNoticeFromRequest(r *http.Request, loc *message.Printer, kind string) string {
	values := r.URL.Query()
	return staffNotice(loc, kind, strings.TrimSpace(values.Get("notice")), strings.TrimSpace(values.Get("name")))
}

func statusNotice(status fleet.Status) string {
	if status.IsLocked() {
		return noticeLocked
	}
	return noticeUnlocked
}

// staffRedirectURL builds the list URL a browser returns to after a mutation.
func staffRedirectURL(pageURL, query, notice, name string) string {
	values := url.Values{}
	values.Set("notice", notice)
	if name != "" {
		values.Set("name", name)
	}
	if query != "" {
		values.Set("q", query)
	}
	return pageURL + "?" + values.Encode()
}

// finishStaffMutation refreshes the table for HTMX callers and redirects everyone else.
func finishStaffMutation(w http.ResponseWriter, r *http.Request, table templ.Component, redirectURL string) {
	if isHTMXRequest(r) && table != nil {
		renderPage(w, r, table, nil, "")
		return
	}
	redirectAfterPost(w, r, redirectURL)
}

// renderStaffFormError answers an invalid add with 422. HTMX callers get
// the message swapped into the open dialog; browsers get the page back
// with the dialog open and the submitted values kept.
func renderStaffFormError(w http.ResponseWriter, r *http.Request, view templates.StaffPageView, page templates.PageContext) {
	if isHTMXRequest(r) {
		w.Header().Set("HX-Retarget", "#"+templates.StaffFormErrorID(view.Kind))
		w.Header().Set("HX-Reswap", "innerHTML")
		renderPageWithStatus(w, r, templates.FormError(view.FormError), nil, "", http.StatusUnprocessableEntity)
		return
	}
	view.FormOpen = true
	renderPageWithStatus(
		w,
		r,
		templates.StaffPage(view, page.Loc),
		templates.StaffFullPage(view, page),
		htmxLocalizedPageTitle(page.Loc, "title."+view.Kind),
		http.StatusUnprocessableEntity,
	)
}

// staffForm reads the add dialog fields.
func staffForm(r *http.Request) templates.StaffForm {
	return templates.StaffForm{
		Name:    strings.TrimSpace(r.PostForm.Get("name")),
		Email:   strings.TrimSpace(r.PostForm.Get("email")),
		Phone:   strings.TrimSpace(r.PostForm.Get("phone")),
		Vehicle: strings.TrimSpace(r.PostForm.Get("vehicle")),
	}
}

// parseMutation runs the shared POST and origin checks and parses the form.
func parseMutation(w http.ResponseWriter, r *http.Request, loc *message.Printer) bool {
	if !requirePost(w, r, loc) {
		return false
	}
	if !requireSameOrigin(w, r, loc) {
		return false
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, loc.Sprintf("error.form_invalid"), http.StatusBadRequest)
		return false
	}
	return true
}
