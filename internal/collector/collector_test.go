package collector

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/sentinelgraph/sentinel-scraper/internal/collector/mocks"
	"github.com/sentinelgraph/sentinel-scraper/internal/common"
	"github.com/sentinelgraph/sentinel-scraper/internal/log"
)

func snapshot(id string, created time.Time) common.TweetSnapshot {
	return common.TweetSnapshot{
		Tweet:     &common.Tweet{ID: id, TimeParsed: created, Query: "india"},
		CheckedAt: created,
	}
}

func newTestCollector(finder finder, repo repo, sink snapshotSink) *collector {
	return &collector{
		queries:  []string{"india"},
		interval: time.Minute,
		limit:    100,
		finder:   finder,
		repo:     repo,
		sink:     sink,
		logger:   log.NewLogger(logrus.New()),
	}
}

func Test_collector_collect(t *testing.T) {
	ctx := context.Background()
	lastSeen := time.Date(2025, 11, 12, 10, 0, 0, 0, time.UTC)

	t.Run("fresh tweets are marked and written", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		finder := mocks.NewMockfinder(ctrl)
		repo := mocks.NewMockrepo(ctrl)
		sink := mocks.NewMocksnapshotSink(ctrl)

		first := snapshot("1", lastSeen.Add(time.Minute))
		second := snapshot("2", lastSeen.Add(2*time.Minute))

		finder.EXPECT().Search(ctx, "india", 100).Return([]common.TweetSnapshot{first, second}, nil)
		repo.EXPECT().IsCollected(ctx, "1").Return(false, nil)
		repo.EXPECT().MarkCollected(ctx, "1").Return(nil)
		repo.EXPECT().IsCollected(ctx, "2").Return(false, nil)
		repo.EXPECT().MarkCollected(ctx, "2").Return(nil)
		sink.EXPECT().Write(ctx, "india", []common.TweetSnapshot{first, second}).Return(nil)

		c := newTestCollector(finder, repo, sink)
		got := c.collect(ctx, "india", lastSeen)
		assert.Equal(t, second.TimeParsed, got)
	})

	t.Run("stale and already collected tweets are skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		finder := mocks.NewMockfinder(ctrl)
		repo := mocks.NewMockrepo(ctrl)
		sink := mocks.NewMocksnapshotSink(ctrl)

		stale := snapshot("1", lastSeen.Add(-time.Minute))
		seen := snapshot("2", lastSeen.Add(time.Minute))

		finder.EXPECT().Search(ctx, "india", 100).Return([]common.TweetSnapshot{stale, seen}, nil)
		repo.EXPECT().IsCollected(ctx, "2").Return(true, nil)

		c := newTestCollector(finder, repo, sink)
		got := c.collect(ctx, "india", lastSeen)
		assert.Equal(t, lastSeen, got)
	})

	t.Run("search error keeps last seen", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		finder := mocks.NewMockfinder(ctrl)
		repo := mocks.NewMockrepo(ctrl)
		sink := mocks.NewMocksnapshotSink(ctrl)

		finder.EXPECT().Search(ctx, "india", 100).Return(nil, errors.New("429 Too Many Requests"))

		c := newTestCollector(finder, repo, sink)
		got := c.collect(ctx, "india", lastSeen)
		assert.Equal(t, lastSeen, got)
	})

	t.Run("sink failure leaves batch unmarked for redelivery", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		finder := mocks.NewMockfinder(ctrl)
		repo := mocks.NewMockrepo(ctrl)
		sink := mocks.NewMocksnapshotSink(ctrl)

		fresh := snapshot("1", lastSeen.Add(time.Minute))
		batch := []common.TweetSnapshot{fresh}

		// First cycle: the sink rejects the batch, nothing gets marked.
		finder.EXPECT().Search(ctx, "india", 100).Return(batch, nil)
		repo.EXPECT().IsCollected(ctx, "1").Return(false, nil)
		sink.EXPECT().Write(ctx, "india", batch).Return(errors.New("disk full"))

		c := newTestCollector(finder, repo, sink)
		got := c.collect(ctx, "india", lastSeen)
		assert.Equal(t, lastSeen, got)

		// Second cycle: the same tweet is still uncollected and gets
		// delivered and marked.
		finder.EXPECT().Search(ctx, "india", 100).Return(batch, nil)
		repo.EXPECT().IsCollected(ctx, "1").Return(false, nil)
		sink.EXPECT().Write(ctx, "india", batch).Return(nil)
		repo.EXPECT().MarkCollected(ctx, "1").Return(nil)

		got = c.collect(ctx, "india", got)
		assert.Equal(t, fresh.TimeParsed, got)
	})

	t.Run("mark failure still advances past delivered tweets", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		finder := mocks.NewMockfinder(ctrl)
		repo := mocks.NewMockrepo(ctrl)
		sink := mocks.NewMocksnapshotSink(ctrl)

		fresh := snapshot("1", lastSeen.Add(time.Minute))
		batch := []common.TweetSnapshot{fresh}

		finder.EXPECT().Search(ctx, "india", 100).Return(batch, nil)
		repo.EXPECT().IsCollected(ctx, "1").Return(false, nil)
		sink.EXPECT().Write(ctx, "india", batch).Return(nil)
		repo.EXPECT().MarkCollected(ctx, "1").Return(errors.New("connection reset"))

		c := newTestCollector(finder, repo, sink)
		got := c.collect(ctx, "india", lastSeen)
		assert.Equal(t, fresh.TimeParsed, got)
	})
}
