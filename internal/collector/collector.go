package collector

import (
	"context"
	"time"

	"github.com/sentinelgraph/sentinel-scraper/internal/common"
	"github.com/sentinelgraph/sentinel-scraper/internal/log"
)

//go:generate mockgen -source=collector.go -destination=mocks/mock_collector.go -package=mocks

const queryKey = "query"

// Collector periodically runs the configured queries through the scraper
// manager, drops already collected tweets and hands fresh batches to the
// sinks.
type Collector interface {
	Watch(ctx context.Context)
}

type finder interface {
	Search(ctx context.Context, query string, limit int) ([]common.TweetSnapshot, error)
}

type repo interface {
	IsCollected(ctx context.Context, id string) (bool, error)
	MarkCollected(ctx context.Context, id string) error
}

type snapshotSink interface {
	Write(ctx context.Context, query string, tweets []common.TweetSnapshot) error
}

type collector struct {
	queries  []string
	interval time.Duration
	limit    int

	finder finder
	repo   repo
	sink   snapshotSink

	logger log.Logger
}

func (c *collector) Watch(ctx context.Context) {
	for _, query := range c.queries {
		go c.searchLoop(ctx, query)
	}
}

func (c *collector) searchLoop(ctx context.Context, query string) {
	lastSeen := time.Now().Add(-c.interval)

	lastSeen = c.collect(ctx, query, lastSeen)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.logger.WithField(queryKey, query).Info("search loop done")
			return
		case <-ticker.C:
			lastSeen = c.collect(ctx, query, lastSeen)
		}
	}
}

func (c *collector) collect(ctx context.Context, query string, lastSeen time.Time) time.Time {
	tweets, err := c.finder.Search(ctx, query, c.limit)
	if err != nil {
		c.logger.WithField(queryKey, query).WithError(err).Error("search failed")
		return lastSeen
	}

	fresh := make([]common.TweetSnapshot, 0, len(tweets))

	for i := range tweets {
		if !tweets[i].TimeParsed.After(lastSeen) {
			continue
		}

		collected, err := c.repo.IsCollected(ctx, tweets[i].ID)
		if err != nil {
			c.logger.WithError(err).Error("check collected tweet")
			continue
		}

		if collected {
			continue
		}

		fresh = append(fresh, tweets[i])
	}

	if len(fresh) == 0 {
		c.logger.WithField(queryKey, query).Debug("all tweets are fresh or already collected")
		return lastSeen
	}

	if err = c.sink.Write(ctx, query, fresh); err != nil {
		c.logger.WithField(queryKey, query).WithError(err).Error("write snapshot")
		return lastSeen
	}

	// Tweets are marked only after the sinks accepted them, so a failed
	// write is redelivered on the next cycle.
	newest := lastSeen

	for i := range fresh {
		if err = c.repo.MarkCollected(ctx, fresh[i].ID); err != nil {
			c.logger.WithError(err).Error("mark collected tweet")
		}

		if fresh[i].TimeParsed.After(newest) {
			newest = fresh[i].TimeParsed
		}
	}

	c.logger.
		WithField(queryKey, query).
		WithField("count", len(fresh)).
		Debug("collector saved batch")

	return newest
}

func NewCollector(cfg *Config, finder finder, repo repo, sink snapshotSink, logger log.Logger) Collector {
	return &collector{
		queries:  cfg.Queries,
		interval: cfg.SearchInterval,
		limit:    cfg.SearchLimit,
		finder:   finder,
		repo:     repo,
		sink:     sink,
		logger:   logger,
	}
}
