package utils

import (
	"log"
	"time"
)

// FetchWithFallback runs fn up to retries+1 times with a fixed backoff and
// returns fallback after the last failure. Reference-data lookups (FX rate,
// spread, commission, existing booking refs) must degrade instead of
// blocking the calling flow.
func FetchWithFallback[T any](fn func() (T, error), fallback T, retries int, backoff time.Duration) (T, bool) {
	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 && backoff > 0 {
			time.Sleep(backoff)
		}
		v, err := fn()
		if err == nil {
			return v, true
		}
		lastErr = err
	}
	log.Printf("[FETCH] falling back after %d attempts: %v", retries+1, lastErr)
	return fallback, false
}
