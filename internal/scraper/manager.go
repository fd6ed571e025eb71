package scraper

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	twitterscraper "github.com/lueurxax/twitter-scraper"
	"golang.org/x/sync/errgroup"

	"github.com/sentinelgraph/sentinel-scraper/internal/common"
	"github.com/sentinelgraph/sentinel-scraper/internal/log"
)

const (
	startDelay     = 15
	workerIndexKey = "worker_index"
	workerErrorMsg = "worker error"
	workerLogin    = "login"
)

// Manager coordinates per-account workers: each request goes to the worker
// with the smallest accumulated delay, searches can fan out across accounts.
type Manager interface {
	Scraper
	ParallelSearch(ctx context.Context, queries []string, limit int) (map[string][]common.TweetSnapshot, error)
	Init(ctx context.Context) error
	Ready() bool
}

type accountManager interface {
	Accounts(ctx context.Context) ([]common.TwitterAccount, error)
	AuthScraper(ctx context.Context, account common.TwitterAccount, scraper *twitterscraper.Scraper) error
}

// Repo is the storage surface the manager and its window limiters need.
type Repo interface {
	AddCounter(ctx context.Context, id string, window time.Duration, counterTime time.Time) error
	CleanCounters(ctx context.Context, id string, window time.Duration) error
	GetCounters(ctx context.Context, id string, window time.Duration) (uint64, error)
	SetThreshold(ctx context.Context, id string, window time.Duration) error
	GetThreshold(ctx context.Context, id string, window time.Duration) (uint64, error)
	CheckIfExist(ctx context.Context, id string, window time.Duration) (bool, error)
	Create(ctx context.Context, id string, window time.Duration, threshold uint64) error
}

type manager struct {
	cfg      Config
	accounts accountManager
	repo     Repo

	workers      []Scraper
	mu           sync.RWMutex
	workerDelays []int64

	profiles profileCache

	log log.Logger
}

func (m *manager) Init(ctx context.Context) error {
	accounts, err := m.accounts.Accounts(ctx)
	if err != nil {
		return err
	}

	if len(accounts) == 0 {
		return ErrNoAccounts
	}

	limiterLogger := m.log.WithField("component", "window_limiter")
	delayLogger := m.log.WithField("component", "delay_manager")
	workerLogger := m.log.WithField("component", "worker")

	metrics := newRequestMetrics()

	for i, account := range accounts {
		scraper := twitterscraper.New().WithDelay(startDelay).SetSearchMode(twitterscraper.SearchLatest)

		if err = m.accounts.AuthScraper(ctx, account, scraper); err != nil {
			return err
		}

		if len(m.cfg.Proxies) > i {
			if err = scraper.SetProxy(m.cfg.Proxies[i]); err != nil {
				return err
			}
		}

		delayManager := NewDelayManager(
			func(seconds int64) { scraper.WithDelay(seconds) },
			newWindowLimiters(account.Login, m.repo, limiterLogger.WithField(workerLogin, account.Login)),
			startDelay,
			delayLogger.WithField(workerLogin, account.Login),
		)

		if err = delayManager.Start(ctx); err != nil {
			return err
		}

		worker := NewWorker(scraper, delayManager, workerLogger.WithField(workerLogin, account.Login))

		m.workers = append(m.workers, newMetricsMiddleware(account.Login, worker, metrics))
	}

	m.workerDelays = make([]int64, len(m.workers))
	for i, w := range m.workers {
		m.workerDelays[i] = w.CurrentDelay()
	}

	if err = m.profiles.init(m.cfg.ProfileCacheTTL); err != nil {
		return err
	}

	m.log.WithField("workers", len(m.workers)).Info("scraper manager ready")

	return nil
}

func (m *manager) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.workers) > 0
}

func (m *manager) CurrentDelay() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.workerDelays) == 0 {
		return 0
	}

	sum := int64(0)

	for _, d := range m.workerDelays {
		sum += d
	}

	return sum / int64(len(m.workerDelays))
}

func (m *manager) Search(ctx context.Context, query string, limit int) ([]common.TweetSnapshot, error) {
	if limit <= 0 {
		limit = m.cfg.SearchLimit
	}

	w, index, err := m.acquireWorker()
	if err != nil {
		return nil, err
	}

	res, err := w.Search(ctx, query, limit)

	m.releaseWorker(index)

	if err != nil {
		m.log.WithField(workerIndexKey, index).WithError(err).Error(workerErrorMsg)
		return nil, err
	}

	return res, nil
}

func (m *manager) UserTimeline(ctx context.Context, username string, limit int) ([]common.TweetSnapshot, error) {
	if limit <= 0 {
		limit = m.cfg.TimelineLimit
	}

	w, index, err := m.acquireWorker()
	if err != nil {
		return nil, err
	}

	res, err := w.UserTimeline(ctx, username, limit)

	m.releaseWorker(index)

	if err != nil {
		m.log.WithField(workerIndexKey, index).WithError(err).Error(workerErrorMsg)
		return nil, err
	}

	return res, nil
}

func (m *manager) GetUser(ctx context.Context, username string) (*common.UserProfile, error) {
	if profile, ok := m.profiles.get(ctx, username); ok {
		return profile, nil
	}

	w, index, err := m.acquireWorker()
	if err != nil {
		return nil, err
	}

	profile, err := w.GetUser(ctx, username)

	m.releaseWorker(index)

	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			return nil, err
		}

		m.log.WithField(workerIndexKey, index).WithError(err).Error(workerErrorMsg)

		return nil, err
	}

	m.profiles.set(ctx, username, profile)

	return profile, nil
}

func (m *manager) TweetDetails(ctx context.Context, id string) (*common.TweetSnapshot, error) {
	w, index, err := m.acquireWorker()
	if err != nil {
		return nil, err
	}

	res, err := w.TweetDetails(ctx, id)

	m.releaseWorker(index)

	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}

		m.log.WithField(workerIndexKey, index).WithError(err).Error(workerErrorMsg)

		return nil, err
	}

	return res, nil
}

// ParallelSearch runs every query, bounded by the worker count. Failed
// queries are reported in the joined error, successful ones still land in
// the result map.
func (m *manager) ParallelSearch(ctx context.Context, queries []string, limit int) (map[string][]common.TweetSnapshot, error) {
	if !m.Ready() {
		return nil, ErrNotReady
	}

	var resMu sync.Mutex

	out := make(map[string][]common.TweetSnapshot, len(queries))
	errs := make([]error, len(queries))

	g := new(errgroup.Group)
	g.SetLimit(len(m.workers))

	for i, query := range queries {
		i, query := i, query

		g.Go(func() error {
			res, err := m.Search(ctx, query, limit)
			if err != nil {
				errs[i] = fmt.Errorf("search %q: %w", query, err)
				return nil
			}

			resMu.Lock()
			out[query] = res
			resMu.Unlock()

			return nil
		})
	}

	_ = g.Wait()

	return out, errors.Join(errs...)
}

func (m *manager) acquireWorker() (Scraper, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.workers) == 0 {
		return nil, 0, ErrNotReady
	}

	minimal := m.workerDelays[0]
	index := 0

	for i, d := range m.workerDelays {
		if d < minimal {
			minimal = d
			index = i
		}
	}

	m.workerDelays[index] += m.workers[index].CurrentDelay()

	return m.workers[index], index, nil
}

func (m *manager) releaseWorker(index int) {
	m.mu.Lock()
	m.workerDelays[index] = m.workers[index].CurrentDelay()
	m.mu.Unlock()
}

func NewManager(cfg Config, accounts accountManager, repo Repo, logger log.Logger) Manager {
	return &manager{
		cfg:      cfg,
		accounts: accounts,
		repo:     repo,
		log:      logger,
	}
}
