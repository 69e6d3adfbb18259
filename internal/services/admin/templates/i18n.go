package templates

import "golang.org/x/text/message"

// Localizer provides translated strings for templ components.
// *message.Printer satisfies it.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T translates a catalog key such as "title.orders".
// Without a localizer, or when the catalog yields nothing, the key itself is shown.
func T(loc Localizer, key string, args ...any) string {
	if loc == nil {
		return key
	}
	if text := loc.Sprintf(key, args...); text != "" {
		return text
	}
	return key
}
