package player

import (
	"log"
	"sync"

	"github.com/automoto/beachbomb/config"
	"golang.org/x/time/rate"
)

var (
	diagOnce    sync.Once
	diagLimiter *rate.Limiter
)

// diagf logs per-tick combat diagnostics when enabled, capped so a held
// button cannot flood the log.
func diagf(format string, args ...any) {
	if !config.Debug.LogCombat {
		return
	}
	diagOnce.Do(func() {
		diagLimiter = rate.NewLimiter(rate.Limit(config.Debug.LogRate), config.Debug.LogBurst)
	})
	if diagLimiter.Allow() {
		log.Printf("combat: "+format, args...)
	}
}
