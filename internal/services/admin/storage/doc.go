// Package storage defines the record-list contracts behind the admin dashboard.
//
// Handlers depend on these interfaces so they stay testable and never reach
// into a concrete list implementation.
package storage
