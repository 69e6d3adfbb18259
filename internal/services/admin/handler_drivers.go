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

// handleDriversPage renders the drivers list page.
func (h *Handler) handleDriversPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	view, err := h.driversView(r.Context(), loc, formQuery(r))
	if err != nil {
		writeDomainError(w, err, lang, "list drivers")
		return
	}
	view.Message = staffNoticeFromRequest(r, loc, templates.StaffDrivers)
	renderPage(
		w,
		r,
		templates.StaffPage(view, loc),
		templates.StaffFullPage(view, h.pageContext(lang, loc, r)),
		htmxLocalizedPageTitle(loc, "title.drivers"),
	)
}

// handleDriversTable renders the drivers table filtered by q.
func (h *Handler) handleDriversTable(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	view, err := h.driversView(r.Context(), loc, formQuery(r))
	if err != nil {
		writeDomainError(w, err, lang, "list drivers")
		return
	}
	renderPage(w, r, templates.StaffTable(view, loc), nil, "")
}

// handleDriverCreate adds a driver from the add dialog.
func (h *Handler) handleDriverCreate(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	if !parseMutation(w, r, loc) {
		return
	}
	form := staffForm(r)
	driver, err := h.store.AddDriver(r.Context(), fleet.DriverInput{
		Name:    form.Name,
		Email:   form.Email,
		Phone:   form.Phone,
		Vehicle: form.Vehicle,
	})
	if err != nil {
		if apperrors.HTTPStatus(err) != http.StatusUnprocessableEntity {
			writeDomainError(w, err, lang, "add driver")
			return
		}
		view, listErr := h.driversView(r.Context(), loc, formQuery(r))
		if listErr != nil {
			writeDomainError(w, listErr, lang, "list drivers")
			return
		}
		view.Form = form
		view.FormError = apperrors.LocalizedMessage(err, lang)
		renderStaffFormError(w, r, view, h.pageContext(lang, loc, r))
		return
	}
	log.Printf("driver added: id=%s name=%q", driver.ID, driver.Name)
	h.finishDriverMutation(w, r, loc, noticeAdded, driver.Name)
}

// handleDriverToggle locks or unlocks a driver.
func (h *Handler) handleDriverToggle(w http.ResponseWriter, r *http.Request, driverID string) {
	loc, lang := h.localizer(w, r)
	if !parseMutation(w, r, loc) {
		return
	}
	driver, err := h.store.ToggleDriverStatus(r.Context(), driverID)
	if err != nil {
		writeDomainError(w, err, lang, "toggle driver")
		return
	}
	log.Printf("driver status changed: id=%s status=%s", driver.ID, driver.Status)
	h.finishDriverMutation(w, r, loc, statusNotice(driver.Status), driver.Name)
}

// handleDriverDelete removes a driver.
func (h *Handler) handleDriverDelete(w http.ResponseWriter, r *http.Request, driverID string) {
	loc, lang := h.localizer(w, r)
	if !parseMutation(w, r, loc) {
		return
	}
	if err := h.store.DeleteDriver(r.Context(), driverID); err != nil {
		writeDomainError(w, err, lang, "delete driver")
		return
	}
	log.Printf("driver deleted: id=%s", driverID)
	h.finishDriverMutation(w, r, loc, noticeDeleted, "")
}

func (h *Handler) finishDriverMutation(w http.ResponseWriter, r *http.Request, loc *message.Printer, notice, name string) {
	query := formQuery(r)
	var table templ.Component
	if isHTMXRequest(r) {
		view, err := h.driversView(r.Context(), loc, query)
		if err != nil {
			log.Printf("refresh drivers table: %v", err)
		} else {
			view.Message = staffNotice(loc, templates.StaffDrivers, notice, name)
			table = templates.StaffTable(view, loc)
		}
	}
	finishStaffMutation(w, r, table, staffRedirectURL(routepath.Drivers, query, notice, name))
}

// driversView lists drivers matching query alongside the unfiltered total.
func (h *Handler) driversView(ctx context.Context, loc *message.Printer, query string) (templates.StaffPageView, error) {
	drivers, err := h.store.ListDrivers(ctx, query)
	if err != nil {
		return templates.StaffPageView{}, fmt.Errorf("list drivers: %w", err)
	}
	total := len(drivers)
	if query != "" {
		all, err := h.store.ListDrivers(ctx, "")
		if err != nil {
			return templates.StaffPageView{}, fmt.Errorf("count drivers: %w", err)
		}
		total = len(all)
	}
	return templates.StaffPageView{
		Kind:      templates.StaffDrivers,
		PageURL:   routepath.Drivers,
		TableURL:  routepath.DriversTable,
		CreateURL: routepath.DriversCreate,
		Query:     query,
		Rows:      buildDriverRows(drivers, loc),
		Total:     total,
	}, nil
}
