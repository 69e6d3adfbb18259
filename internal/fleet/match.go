package fleet

import (
	"strings"
	"time"

	apperrors "github.com/louisbranch/dispatchdesk/internal/platform/errors"
)

// matchesAny performs a case-insensitive substring match across fields.
// A blank query matches every record.
func matchesAny(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func validateContact(name, email, phone string) error {
	if name == "" {
		return apperrors.New(apperrors.CodeNameRequired, "name is required")
	}
	if email == "" {
		return apperrors.New(apperrors.CodeEmailRequired, "email is required")
	}
	if at := strings.Index(email, "@"); at <= 0 || at == len(email)-1 {
		return apperrors.WithMetadata(apperrors.CodeEmailInvalid, "invalid email "+email, map[string]string{"Value": email})
	}
	if phone == "" {
		return apperrors.New(apperrors.CodePhoneRequired, "phone is required")
	}
	return nil
}

// dateOf truncates t to its calendar day in UTC.
func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
