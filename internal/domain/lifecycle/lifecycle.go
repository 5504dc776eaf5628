// Package lifecycle holds shared process lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown operations such as the initial
// database ping and graceful HTTP server shutdown.
const DefaultTimeout = 10 * time.Second
