package admin

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/dispatchdesk/internal/fleet"
	apperrors "github.com/louisbranch/dispatchdesk/internal/platform/errors"
	routepath "github.com/louisbranch/dispatchdesk/internal/services/admin/routepath"
	"github.com/louisbranch/dispatchdesk/internal/services/admin/templates"
	"golang.org/x/text/message"
)

// handleManagersPage renders the managers list page.
func (h *Handler) handleManagersPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	view, err := h.managersView(r.Context(), loc, formQuery(r))
	if err != nil {
		writeDomainError(w, err, lang, "list managers")
		return
	}
	view.Message = staffNoticeFromRequest(r, loc, templates.StaffManagers)
	renderPage(
		w,
		r,
		templates.StaffPage(view, loc),
		templates.StaffFullPage(view, h.pageContext(lang, loc, r)),
		htmxLocalizedPageTitle(loc, "title.managers"),
	)
}

// handleManagersTable renders the managers table filtered by q.
func (h *Handler) handleManagersTable(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	view, err := h.managersView(r.Context(), loc, formQuery(r))
	if err != nil {
		writeDomainError(w, err, lang, "list managers")
		return
	}
	renderPage(w, r, templates.StaffTable(view, loc), nil, "")
}

// handleManagerCreate adds a manager from the add dialog.
func (h *Handler) handleManagerCreate(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	if !parseMutation(w, r, loc) {
		return
	}
	form := staffForm(r)
	manager, err := h.store.AddManager(r.Context(), fleet.ManagerInput{
		Name:  form.Name,
		Email: form.Email,
		Phone: form.Phone,
	})
	if err != nil {
		if apperrors.HTTPStatus(err) != http.StatusUnprocessableEntity {
			writeDomainError(w, err, lang, "add manager")
			return
		}
		view, listErr := h.managersView(r.Context(), loc, formQuery(r))
		if listErr != nil {
			writeDomainError(w, listErr, lang, "list managers")
			return
		}
		view.Form = form
		view.FormError = apperrors.LocalizedMessage(err, lang)
		renderStaffFormError(w, r, view, h.pageContext(lang, loc, r))
		return
	}
	log.Printf("manager added: id=%s name=%q", manager.ID, manager.Name)
	h.finishManagerMutation(w, r, loc, noticeAdded, manager.Name)
}

// handleManagerToggle locks or unlocks a manager.
func (h *Handler) handleManagerToggle(w http.ResponseWriter, r *http.Request, managerID string) {
	loc, lang := h.localizer(w, r)
	if !parseMutation(w, r, loc) {
		return
	}
	manager, err := h.store.ToggleManagerStatus(r.Context(), managerID)
	if err != nil {
		writeDomainError(w, err, lang, "toggle manager")
		return
	}
	log.Printf("manager status changed: id=%s status=%s", manager.ID, manager.Status)
	h.finishManagerMutation(w, r, loc, statusNotice(manager.Status), manager.Name)
}

// handleManagerDelete removes a manager.
func (h *Handler) handleManagerDelete(w http.ResponseWriter, r *http.Request, managerID string) {
	loc, lang := h.localizer(w, r)
	if !parseMutation(w, r, loc) {
		return
	}
	if err := h.store.DeleteManager(r.Context(), managerID); err != nil {
		writeDomainError(w, err, lang, "delete manager")
		return
	}
	log.Printf("manager deleted: id=%s", managerID)
	h.finishManagerMutation(w, r, loc, noticeDeleted, "")
}

func (h *Handler) finishManagerMutation(w http.ResponseWriter, r *http.Request, loc *message.Printer, notice, name string) {
	query := formQuery(r)
	var table templ.Component
	if isHTMXRequest(r) {
		view, err := h.managersView(r.Context(), loc, query)
		if err != nil {
			log.Printf("refresh managers table: %v", err)
		} else {
			view.Message = staffNotice(loc, templates.StaffManagers, notice, name)
			table = templates.StaffTable(view, loc)
		}
	}
	finishStaffMutation(w, r, table, staffRedirectURL(routepath.Managers, query, notice, name))
}

// managersView lists managers matching query alongside the unfiltered total.
func (h *Handler) managersView(ctx context.Context, loc *message.Printer, query string) (templates.StaffPageView, error) {
	managers, err := h.store.ListManagers(ctx, query)
	if err != nil {
		return templates.StaffPageView{}, fmt.Errorf("list managers: %w", err)
	}
	total := len(managers)
	if query != "" {
		all, err := h.store.ListManagers(ctx, "")
		if err != nil {
			return templates.StaffPageView{}, fmt.Errorf("count managers: %w", err)
		}
		total = len(all)
	}
	return templates.StaffPageView{
		Kind:      templates.StaffManagers,
		PageURL:   routepath.Managers,
		TableURL:  routepath.ManagersTable,
		CreateURL: routepath.ManagersCreate,
		Query:     query,
		Rows:      buildManagerRows(managers, loc),
		Total:     total,
	}, nil
}
