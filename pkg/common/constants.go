package common

import "time"

const (
	// LiveSessionCacheTTL bounds how long a stale snapshot can be served
	// if an update event was missed.
	LiveSessionCacheTTL = 2 * time.Minute
)

// CacheConfig holds redis connection settings
type CacheConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	TLS      bool
}
