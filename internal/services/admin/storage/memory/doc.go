// Package memory keeps the admin record lists in process memory. Contents are
// lost when the process exits.
package memory
