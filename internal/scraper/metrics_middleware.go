package scraper

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sentinelgraph/sentinel-scraper/internal/common"
)

const (
	opSearch       = "search"
	opUserTimeline = "user_timeline"
	opGetUser      = "get_user"
	opTweetDetails = "tweet_details"
)

type requestMetrics struct {
	requestsHistogramSeconds *prometheus.HistogramVec
}

// Registered once per process; every worker shares the vector and labels
// itself by login.
func newRequestMetrics() *requestMetrics {
	hist := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "sentinelgraph",
		Subsystem: "scraper",
		Name:      "requests_seconds",
		Help:      "Scrape requests histogram in seconds",
	}, []string{"login", "op", "error"})

	prometheus.MustRegister(hist)

	return &requestMetrics{requestsHistogramSeconds: hist}
}

type metricsMiddleware struct {
	login string
	next  Scraper

	metrics *requestMetrics
}

func (m *metricsMiddleware) Search(ctx context.Context, query string, limit int) ([]common.TweetSnapshot, error) {
	st := time.Now()

	data, err := m.next.Search(ctx, query, limit)

	m.observe(opSearch, st, err)

	return data, err
}

func (m *metricsMiddleware) UserTimeline(ctx context.Context, username string, limit int) ([]common.TweetSnapshot, error) {
	st := time.Now()

	data, err := m.next.UserTimeline(ctx, username, limit)

	m.observe(opUserTimeline, st, err)

	return data, err
}

func (m *metricsMiddleware) GetUser(ctx context.Context, username string) (*common.UserProfile, error) {
	st := time.Now()

	data, err := m.next.GetUser(ctx, username)

	m.observe(opGetUser, st, err)

	return data, err
}

func (m *metricsMiddleware) TweetDetails(ctx context.Context, id string) (*common.TweetSnapshot, error) {
	st := time.Now()

	data, err := m.next.TweetDetails(ctx, id)

	m.observe(opTweetDetails, st, err)

	return data, err
}

func (m *metricsMiddleware) CurrentDelay() int64 {
	return m.next.CurrentDelay()
}

func (m *metricsMiddleware) observe(op string, start time.Time, err error) {
	m.metrics.requestsHistogramSeconds.
		WithLabelValues(m.login, op, strconv.FormatBool(err != nil)).
		Observe(time.Since(start).Seconds())
}

func newMetricsMiddleware(login string, next Scraper, metrics *requestMetrics) Scraper {
	return &metricsMiddleware{login: login, next: next, metrics: metrics}
}
