// Package cache provides in-process caching for resolved prompt specs and
// knowledge contexts, so repeated evaluations in one process do not re-read
// and re-parse the same resources.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching resolved resources
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, value any, ttl time.Duration)
	Delete(key string)
	Clear()
}

// Key generates a stable cache key from a namespace and name
func Key(namespace, name string) string {
	hash := sha256.Sum256([]byte(namespace + ":" + name))
	return "impacteval:v1:" + hex.EncodeToString(hash[:])
}
