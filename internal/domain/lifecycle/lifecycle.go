// Package lifecycle holds shared constants for application start/stop
// coordination.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown and startup health checks.
const DefaultTimeout = 10 * time.Second
