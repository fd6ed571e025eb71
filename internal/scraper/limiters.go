package scraper

import (
	"time"

	"github.com/sentinelgraph/sentinel-scraper/internal/log"
	"github.com/sentinelgraph/sentinel-scraper/internal/scraper/windowlimiter"
)

var limiterIntervals = []time.Duration{
	time.Minute,
	time.Hour,
	time.Hour * 24,
	time.Hour * 24 * 30,
}

func newWindowLimiters(login string, repo Repo, logger log.Logger) []windowlimiter.WindowLimiter {
	limiters := make([]windowlimiter.WindowLimiter, len(limiterIntervals))

	for i, interval := range limiterIntervals {
		limiters[i] = windowlimiter.NewLimiter(interval, login, repo, logger)
	}

	return limiters
}
