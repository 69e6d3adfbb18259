// Package fleet defines the staff and order records an operator manages from
// the admin dashboard: managers, drivers, and the orders they handle.
//
// Records are plain values. Lists live in a store; this package only knows
// how to build, validate, toggle, and match them.
package fleet
