package scraper

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentinelgraph/sentinel-scraper/internal/common"
	"github.com/sentinelgraph/sentinel-scraper/internal/log"
)

type stubWorker struct {
	delay     int64
	searches  int32
	lastLimit int
	searchErr error
}

func (s *stubWorker) Search(_ context.Context, query string, limit int) ([]common.TweetSnapshot, error) {
	atomic.AddInt32(&s.searches, 1)
	s.lastLimit = limit

	if s.searchErr != nil {
		return nil, s.searchErr
	}

	return []common.TweetSnapshot{{Tweet: &common.Tweet{ID: "1", Query: query}}}, nil
}

func (s *stubWorker) UserTimeline(_ context.Context, _ string, limit int) ([]common.TweetSnapshot, error) {
	s.lastLimit = limit
	return nil, nil
}

func (s *stubWorker) GetUser(context.Context, string) (*common.UserProfile, error) {
	return &common.UserProfile{Username: "someone"}, nil
}

func (s *stubWorker) TweetDetails(context.Context, string) (*common.TweetSnapshot, error) {
	return nil, ErrNotFound
}

func (s *stubWorker) CurrentDelay() int64 { return s.delay }

func newTestManager(workers ...Scraper) *manager {
	delays := make([]int64, len(workers))
	for i, w := range workers {
		delays[i] = w.CurrentDelay()
	}

	return &manager{
		workers:      workers,
		workerDelays: delays,
		log:          log.NewLogger(logrus.New()),
	}
}

func Test_manager_acquireWorker(t *testing.T) {
	t.Run("picks least delayed", func(t *testing.T) {
		slow := &stubWorker{delay: 100}
		fast := &stubWorker{delay: 5}
		m := newTestManager(slow, fast)

		_, index, err := m.acquireWorker()
		require.NoError(t, err)
		assert.Equal(t, 1, index)

		m.releaseWorker(index)
		assert.Equal(t, int64(5), m.workerDelays[1])
	})

	t.Run("busy worker accumulates delay", func(t *testing.T) {
		a := &stubWorker{delay: 10}
		b := &stubWorker{delay: 10}
		m := newTestManager(a, b)

		_, first, err := m.acquireWorker()
		require.NoError(t, err)
		_, second, err := m.acquireWorker()
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("no workers", func(t *testing.T) {
		m := newTestManager()

		_, _, err := m.acquireWorker()
		assert.ErrorIs(t, err, ErrNotReady)
	})
}

func Test_manager_defaultLimits(t *testing.T) {
	w := &stubWorker{delay: 1}
	m := newTestManager(w)
	m.cfg = Config{SearchLimit: 42, TimelineLimit: 77}

	t.Run("search falls back to configured limit", func(t *testing.T) {
		_, err := m.Search(context.Background(), "india", 0)
		require.NoError(t, err)
		assert.Equal(t, 42, w.lastLimit)
	})

	t.Run("explicit limit wins", func(t *testing.T) {
		_, err := m.Search(context.Background(), "india", 7)
		require.NoError(t, err)
		assert.Equal(t, 7, w.lastLimit)
	})

	t.Run("timeline falls back to configured limit", func(t *testing.T) {
		_, err := m.UserTimeline(context.Background(), "someone", 0)
		require.NoError(t, err)
		assert.Equal(t, 77, w.lastLimit)
	})
}

func Test_manager_Ready(t *testing.T) {
	assert.False(t, newTestManager().Ready())
	assert.True(t, newTestManager(&stubWorker{delay: 1}).Ready())
}

func Test_manager_CurrentDelay(t *testing.T) {
	m := newTestManager(&stubWorker{delay: 10}, &stubWorker{delay: 20})
	assert.Equal(t, int64(15), m.CurrentDelay())
}

func Test_manager_ParallelSearch(t *testing.T) {
	t.Run("all queries succeed", func(t *testing.T) {
		m := newTestManager(&stubWorker{delay: 1}, &stubWorker{delay: 2})

		res, err := m.ParallelSearch(context.Background(), []string{"bjp", "congress"}, 10)
		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, "bjp", res["bjp"][0].Query)
		assert.Equal(t, "congress", res["congress"][0].Query)
	})

	t.Run("partial failure keeps successful queries", func(t *testing.T) {
		boom := errors.New("boom")
		failing := &stubWorker{delay: 1, searchErr: boom}
		m := newTestManager(failing)

		res, err := m.ParallelSearch(context.Background(), []string{"india"}, 10)
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, res)
	})

	t.Run("not ready", func(t *testing.T) {
		m := newTestManager()

		_, err := m.ParallelSearch(context.Background(), []string{"india"}, 10)
		assert.ErrorIs(t, err, ErrNotReady)
	})
}
