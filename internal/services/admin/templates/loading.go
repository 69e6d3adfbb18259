package templates

import "github.com/a-h/templ"

// LazyLoad renders a placeholder that HTMX replaces with url's content.
func LazyLoad(url string, message string) templ.Component {
	return component(func(out *htmlWriter) {
		out.raw(`<div class="lazy-load"`)
		out.href("hx-get", url)
		out.attr("hx-trigger", "load")
		out.attr("hx-swap", "outerHTML")
		out.raw(`>`)
		out.render(loadingRing(message))
		out.raw(`</div>`)
	})
}

// LoadingSpinner renders the spinner without a message.
func LoadingSpinner() templ.Component {
	return loadingRing("")
}

func loadingRing(message string) templ.Component {
	return component(func(out *htmlWriter) {
		out.raw(`<span class="loading loading-ring loading-md" aria-hidden="true"></span>`)
		if message != "" {
			out.raw(`<span class="sr-only">`)
			out.text(message)
			out.raw(`</span>`)
		}
	})
}
