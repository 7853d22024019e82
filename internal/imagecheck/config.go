// internal/imagecheck/config.go
package imagecheck

import "time"

type Config struct {
	ProxyBaseURL string
	ProbeTimeout time.Duration
}
