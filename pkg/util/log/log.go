// Package log provides the process-wide default logger, shared by the CLI
// and the internal packages it drives.
package log

import (
	"os"
	"time"

	"github.com/go-kit/log"
	"golang.org/x/time/rate"
)

// Logger is the default process-wide logger: logfmt to stderr, timestamped.
var Logger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))

func init() {
	Logger = log.With(Logger, "ts", log.DefaultTimestampUTC)
}

// RateLimitedLogger wraps a logger so that at most logsPerSecond messages
// per second are emitted; the rest are dropped silently. Useful for a
// per-word warning that would otherwise fire once per token in a large
// text file.
type RateLimitedLogger struct {
	limiter *rate.Limiter
	logger  log.Logger
}

// NewRateLimitedLogger returns a RateLimitedLogger wrapping logger, capped
// at logsPerSecond messages per second.
func NewRateLimitedLogger(logsPerSecond int, logger log.Logger) *RateLimitedLogger {
	return &RateLimitedLogger{
		limiter: rate.NewLimiter(rate.Limit(logsPerSecond), 1),
		logger:  logger,
	}
}

// Log implements log.Logger, dropping keyvals if the rate limit is
// exceeded.
func (l *RateLimitedLogger) Log(keyvals ...interface{}) error {
	if !l.limiter.AllowN(time.Now(), 1) {
		return nil
	}
	return l.logger.Log(keyvals...)
}
