package templates

import "github.com/a-h/templ"

// PageHeading holds header metadata for pages.
type PageHeading struct {
	// Title is the page heading.
	Title string
	// Subtitle renders beneath the title when set.
	Subtitle string
}

// Badge variants map record states to colors.
const (
	BadgeSuccess = "success"
	BadgeWarning = "warning"
	BadgeInfo    = "info"
	BadgeError   = "error"
	BadgeNeutral = "neutral"
)

// Heading renders a page heading.
func Heading(heading PageHeading) templ.Component {
	return component(func(out *htmlWriter) {
		out.raw(`<header class="page-heading"><h1>`)
		out.text(heading.Title)
		out.raw(`</h1>`)
		if heading.Subtitle != "" {
			out.raw(`<p class="subtitle">`)
			out.text(heading.Subtitle)
			out.raw(`</p>`)
		}
		out.raw(`</header>`)
	})
}

// StatusBadge renders a colored status pill.
func StatusBadge(label string, variant string) templ.Component {
	if variant == "" {
		variant = BadgeNeutral
	}
	return component(func(out *htmlWriter) {
		out.raw(`<span`)
		out.attr("class", "badge badge-"+variant)
		out.raw(`>`)
		out.text(label)
		out.raw(`</span>`)
	})
}

// Alert renders a flash message; empty messages render nothing.
func Alert(message string, variant string) templ.Component {
	return component(func(out *htmlWriter) {
		if message == "" {
			return
		}
		out.raw(`<div role="status"`)
		out.attr("class", "alert alert-"+variant)
		out.raw(`>`)
		out.text(message)
		out.raw(`</div>`)
	})
}

// SearchForm renders a GET search box that live-updates target via HTMX.
func SearchForm(id, action, tableURL, target, query, placeholder string, loc Localizer, extra templ.Component) templ.Component {
	return component(func(out *htmlWriter) {
		out.raw(`<form class="search" role="search" method="get"`)
		out.attr("id", id)
		out.href("action", action)
		out.href("hx-get", tableURL)
		out.attr("hx-target", target)
		out.attr("hx-swap", "outerHTML")
		out.attr("hx-trigger", "input changed delay:300ms from:find input, change from:find select, submit")
		out.attr("hx-indicator", "#"+id+"-indicator")
		out.raw(`><label><span class="sr-only">`)
		out.text(T(loc, "search.label"))
		out.raw(`</span><input type="search" name="q"`)
		out.attr("value", query)
		out.attr("placeholder", placeholder)
		out.raw(`></label>`)
		out.render(extra)
		out.raw(`<button type="submit" class="btn">`)
		out.text(T(loc, "search.submit"))
		out.raw(`</button><span class="htmx-indicator"`)
		out.attr("id", id+"-indicator")
		out.raw(`>`)
		out.render(LoadingSpinner())
		out.raw(`</span></form>`)
	})
}
