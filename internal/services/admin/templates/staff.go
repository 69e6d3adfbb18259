package templates

import "github.com/a-h/templ"

// Staff list kinds. Each doubles as the locale key prefix and tab id.
const (
	StaffManagers = TabManagers
	StaffDrivers  = TabDrivers
)

// StaffForm echoes the add form values back after a failed submission.
type StaffForm struct {
	Name    string
	Email   string
	Phone   string
	Vehicle string
}

// StaffRow is a formatted manager or driver row.
type StaffRow struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Vehicle     string
	StatusLabel string
	StatusBadge string
	Locked      bool
	AddedAt     string
	// Count is managed orders for managers and completed deliveries for drivers.
	Count         string
	ToggleURL     string
	ToggleLabel   string
	DeleteURL     string
	DeleteLabel   string
	DeleteConfirm string
}

// StaffPageView provides data for the managers and drivers pages.
type StaffPageView struct {
	Kind      string
	PageURL   string
	TableURL  string
	CreateURL string
	Query     string
	Message   string
	Rows      []StaffRow
	// Total is the unfiltered record count.
	Total     int
	Form      StaffForm
	FormError string
	// FormOpen renders the add dialog already open.
	FormOpen bool
}

func (v StaffPageView) showVehicle() bool {
	return v.Kind == StaffDrivers
}

// headers lists the table column labels for the staff kind.
func (v StaffPageView) headers(loc Localizer) []string {
	headers := []string{T(loc, "field.name"), T(loc, "field.email"), T(loc, "field.phone")}
	countHeader := T(loc, "field.managed_orders")
	if v.showVehicle() {
		headers = append(headers, T(loc, "field.vehicle"))
		countHeader = T(loc, "field.deliveries")
	}
	return append(headers, T(loc, "field.status"), T(loc, "field.added"), countHeader, T(loc, "field.actions"))
}

func (v StaffPageView) tableID() string {
	return v.Kind + "-table"
}

func (v StaffPageView) dialogID() string {
	return v.Kind + "-dialog"
}

func (v StaffPageView) formErrorID() string {
	return StaffFormErrorID(v.Kind)
}

// StaffFormErrorID returns the element id that holds add form errors.
func StaffFormErrorID(kind string) string {
	return kind + "-form-error"
}

// StaffPage renders the page body: heading, search, add dialog, and table.
func StaffPage(view StaffPageView, loc Localizer) templ.Component {
	placeholder := T(loc, "search.people_placeholder")
	if view.showVehicle() {
		placeholder = T(loc, "search.drivers_placeholder")
	}
	return component(func(out *htmlWriter) {
		out.render(Heading(PageHeading{Title: T(loc, "title."+view.Kind)}))
		out.raw(`<div class="toolbar">`)
		out.render(SearchForm(view.Kind+"-search", view.PageURL, view.TableURL, "#"+view.tableID(), view.Query, placeholder, loc, nil))
		out.raw(`<button type="button" class="btn btn-primary"`)
		out.attr("onclick", "document.getElementById('"+view.dialogID()+"').showModal()")
		out.raw(`>`)
		out.text(T(loc, view.Kind+".add"))
		out.raw(`</button></div>`)
		out.render(StaffAddDialog(view, loc))
		out.render(StaffTable(view, loc))
	})
}

// StaffFullPage renders the staff page inside the layout.
func StaffFullPage(view StaffPageView, page PageContext) templ.Component {
	page.ActiveTab = view.Kind
	return Layout(page, T(page.Loc, "title."+view.Kind), StaffPage(view, page.Loc))
}

// StaffAddDialog renders the add modal. Without JavaScript the form posts
// normally; with HTMX it swaps the refreshed table and closes itself.
func StaffAddDialog(view StaffPageView, loc Localizer) templ.Component {
	return component(func(out *htmlWriter) {
		out.raw(`<dialog class="modal"`)
		out.attr("id", view.dialogID())
		out.flag("open", view.FormOpen)
		out.raw(`><form method="post" class="modal-box"`)
		out.href("action", view.CreateURL)
		out.href("hx-post", view.CreateURL)
		out.attr("hx-target", "#"+view.tableID())
		out.attr("hx-swap", "outerHTML")
		out.attr("hx-include", "#"+view.Kind+"-search")
		out.attr("hx-on::after-request", "if (event.detail.successful) { this.reset(); this.closest('dialog').close(); }")
		out.raw(`><h2>`)
		out.text(T(loc, view.Kind+".add"))
		out.raw(`</h2><div`)
		out.attr("id", view.formErrorID())
		out.raw(` aria-live="polite">`)
		out.render(FormError(view.FormError))
		out.raw(`</div>`)
		out.render(textField("name", "text", T(loc, "field.name"), view.Form.Name))
		out.render(textField("email", "email", T(loc, "field.email"), view.Form.Email))
		out.render(textField("phone", "tel", T(loc, "field.phone"), view.Form.Phone))
		if view.showVehicle() {
			out.render(textField("vehicle", "text", T(loc, "field.vehicle"), view.Form.Vehicle))
		}
		out.raw(`<div class="modal-actions"><button type="button" class="btn"`)
		out.attr("onclick", "this.closest('dialog').close()")
		out.raw(`>`)
		out.text(T(loc, "action.cancel"))
		out.raw(`</button><button type="submit" class="btn btn-primary">`)
		out.text(T(loc, "action.save"))
		out.raw(`</button></div></form></dialog>`)
	})
}

// FormError renders a validation message for the add dialog.
func FormError(message string) templ.Component {
	return Alert(message, BadgeError)
}

func textField(name, inputType, label, value string) templ.Component {
	return component(func(out *htmlWriter) {
		out.raw(`<label class="field"><span>`)
		out.text(label)
		out.raw(`</span><input required`)
		out.attr("type", inputType)
		out.attr("name", name)
		out.attr("value", value)
		out.raw(`></label>`)
	})
}
