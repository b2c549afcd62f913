// Package lifecycle holds shared limits for process start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds fx OnStart/OnStop hooks such as database pings and server shutdown.
const DefaultTimeout = 10 * time.Second
