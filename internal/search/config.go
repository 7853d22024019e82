// internal/search/config.go
package search

import "time"

type Config struct {
	BaseURL    string
	Timeout    time.Duration
	DefaultNum int
	MaxNum     int
}
