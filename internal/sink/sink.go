package sink

import (
	"context"
	"errors"

	"github.com/sentinelgraph/sentinel-scraper/internal/common"
)

// Sink receives one batch of collected snapshots per query cycle.
type Sink interface {
	Write(ctx context.Context, query string, tweets []common.TweetSnapshot) error
}

type multi []Sink

func (m multi) Write(ctx context.Context, query string, tweets []common.TweetSnapshot) error {
	errs := make([]error, len(m))

	for i, s := range m {
		errs[i] = s.Write(ctx, query, tweets)
	}

	return errors.Join(errs...)
}

// Multi fans a batch out to every sink, collecting all failures.
func Multi(sinks ...Sink) Sink {
	return multi(sinks)
}
