// Package timeouts defines shared timeout constants used by the admin
// process. Keeping them in one place keeps server and handler budgets aligned.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Write caps how long a response may take to be written.
const Write = 15 * time.Second

// Idle bounds keep-alive connections between requests.
const Idle = 60 * time.Second

// Request caps the work a single dashboard request may do against the store.
const Request = 2 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second
