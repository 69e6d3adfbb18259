package templates

// HTMXFallbackSrc is the pinned htmx release used when no local copy is served.
const HTMXFallbackSrc = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// PageContext provides shared layout context for admin pages.
type PageContext struct {
	Lang         string
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
	// ActiveTab names the navigation tab to highlight.
	ActiveTab string
	// HTMXSrc is the script URL for htmx.
	HTMXSrc string
}

func (p PageContext) lang() string {
	if p.Lang == "" {
		return "en-US"
	}
	return p.Lang
}

func (p PageContext) htmxSrc() string {
	if p.HTMXSrc == "" {
		return HTMXFallbackSrc
	}
	return p.HTMXSrc
}
