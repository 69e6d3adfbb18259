// Package errors provides structured error handling with i18n support.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"

	// Staff record validation
	CodeNameRequired    Code = "NAME_REQUIRED"
	CodeEmailRequired   Code = "EMAIL_REQUIRED"
	CodeEmailInvalid    Code = "EMAIL_INVALID"
	CodePhoneRequired   Code = "PHONE_REQUIRED"
	CodeVehicleRequired Code = "VEHICLE_REQUIRED"
	CodeStatusInvalid   Code = "STATUS_INVALID"

	// Order validation
	CodeOrderStatusInvalid Code = "ORDER_STATUS_INVALID"
)

// HTTPStatus maps domain codes to HTTP response statuses.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeNameRequired,
		CodeEmailRequired,
		CodeEmailInvalid,
		CodePhoneRequired,
		CodeVehicleRequired,
		CodeStatusInvalid,
		CodeOrderStatusInvalid:
		return http.StatusUnprocessableEntity
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
