package fleet

import (
	"strings"

	apperrors "github.com/louisbranch/dispatchdesk/internal/platform/errors"
)

// Status is the account state shared by managers and drivers.
type Status string

const (
	StatusActive Status = "active"
	StatusLocked Status = "locked"
)

// ParseStatus validates a raw status value.
func ParseStatus(value string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(value))) {
	case StatusActive:
		return StatusActive, nil
	case StatusLocked:
		return StatusLocked, nil
	default:
		return "", apperrors.WithMetadata(apperrors.CodeStatusInvalid, "invalid status "+value, map[string]string{"Value": value})
	}
}

// Toggle flips active and locked. Any other value becomes active.
func (s Status) Toggle() Status {
	if s == StatusActive {
		return StatusLocked
	}
	return StatusActive
}

// IsLocked reports whether the record is locked.
func (s Status) IsLocked() bool {
	return s == StatusLocked
}

// OrderStatus is the fulfilment stage of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderDelivered  OrderStatus = "delivered"
)

// OrderStatuses lists order stages in display order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{OrderPending, OrderProcessing, OrderDelivered}
}

// ParseOrderStatus validates a raw order status value.
func ParseOrderStatus(value string) (OrderStatus, error) {
	normalized := OrderStatus(strings.ToLower(strings.TrimSpace(value)))
	for _, status := range OrderStatuses() {
		if status == normalized {
			return status, nil
		}
	}
	return "", apperrors.WithMetadata(apperrors.CodeOrderStatusInvalid, "invalid order status "+value, map[string]string{"Value": value})
}
