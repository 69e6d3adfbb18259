// Package i18n holds the language tags supported across dispatch desk surfaces.
package i18n

import (
	"strings"

	"github.com/louisbranch/dispatchdesk/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
)

var (
	englishUS   = language.MustParse("en-US")
	portugueseB = language.MustParse("pt-BR")

	supportedTags = []language.Tag{englishUS, portugueseB}
	tagMatcher    = language.NewMatcher(supportedTags)
)

// SupportedTags returns the list of supported language tags.
func SupportedTags() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// DefaultTag returns the default language tag.
func DefaultTag() language.Tag {
	return englishUS
}

// ParseTag parses value and reports whether it maps to a supported tag.
// Base languages ("pt", "en") resolve to their supported regional variant.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Tag{}, false
	}
	parsed, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, false
	}
	for _, tag := range supportedTags {
		if tag == parsed {
			return tag, true
		}
	}
	parsedBase, _ := parsed.Base()
	for _, tag := range supportedTags {
		base, _ := tag.Base()
		if base == parsedBase && parsed == language.Make(parsedBase.String()) {
			return tag, true
		}
	}
	return language.Tag{}, false
}

// MatchTags picks the best supported tag for a list of preferences.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	_, index, confidence := tagMatcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supportedTags[index]
}

// LocaleForTag returns the catalog locale identifier for tag.
func LocaleForTag(tag language.Tag) string {
	for _, supported := range supportedTags {
		if supported == tag {
			return supported.String()
		}
	}
	return catalog.BaseLocale
}
