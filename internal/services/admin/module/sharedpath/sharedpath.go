// Package sharedpath parses record subroutes shared by the staff modules.
package sharedpath

import "strings"

// SplitPathParts normalizes a slash-delimited route suffix into non-empty path segments.
func SplitPathParts(path string) []string {
	rawParts := strings.Split(path, "/")
	parts := make([]string, 0, len(rawParts))
	for _, part := range rawParts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		parts = append(parts, part)
	}
	return parts
}

// RecordAction splits "<prefix><id>/<action>" into its record id and action.
// ok is false when path does not start with prefix or the suffix is not exactly two segments.
func RecordAction(path, prefix string) (id, action string, ok bool) {
	suffix, found := strings.CutPrefix(path, prefix)
	if !found {
		return "", "", false
	}
	parts := SplitPathParts(suffix)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}
