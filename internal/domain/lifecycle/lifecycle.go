// Package lifecycle holds shared constants for application lifecycle management.
package lifecycle

import "time"

// DefaultTimeout bounds graceful-shutdown operations.
const DefaultTimeout = 10 * time.Second
