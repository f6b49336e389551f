// Package lifecycle holds timing constants shared by fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds how long a start or stop hook may block.
const DefaultTimeout = 10 * time.Second
