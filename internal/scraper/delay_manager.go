package scraper

import (
	"context"
	"time"

	"github.com/sentinelgraph/sentinel-scraper/internal/log"
	"github.com/sentinelgraph/sentinel-scraper/internal/scraper/windowlimiter"
)

const delayKey = "delay"

// Manager tunes the per-worker request delay: 429 responses teach the window
// limiters their thresholds, quiet periods decay the delay back down.
type DelayManager interface {
	TooManyRequests(ctx context.Context)
	AfterRequest()
	ProcessedQuery()
	CurrentDelay() int64
	Start(ctx context.Context) error
}

type delayController struct {
	setter func(seconds int64)
	delay  int64

	windowLimiters   []windowlimiter.WindowLimiter
	forceRecalculate chan struct{}

	startTime time.Time

	log log.Logger
}

func (m *delayController) TooManyRequests(ctx context.Context) {
	m.log.WithField(delayKey, m.delay).Error("too many requests")

	for _, limiter := range m.windowLimiters {
		if err := limiter.TrySetThreshold(ctx, m.startTime); err != nil {
			m.log.WithError(err).Error("error while setting threshold")
			return
		}
	}
}

func (m *delayController) AfterRequest() {
	for _, limiter := range m.windowLimiters {
		limiter.Inc()
	}

	select {
	case m.forceRecalculate <- struct{}{}:
	default:
	}
}

func (m *delayController) ProcessedQuery() {}

func (m *delayController) CurrentDelay() int64 {
	return m.delay
}

func (m *delayController) Start(ctx context.Context) error {
	for _, limiter := range m.windowLimiters {
		if err := limiter.Start(ctx, m.delay); err != nil {
			return err
		}
	}

	go m.loop(ctx)

	return nil
}

func (m *delayController) loop(ctx context.Context) {
	ticker := time.NewTicker(time.Second * 10)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-m.forceRecalculate:
			if err := m.recalculate(ctx, 5); err != nil {
				m.log.WithError(err).Error("error while recalculate")
			}
		case <-ticker.C:
			if err := m.recalculate(ctx, 1); err != nil {
				m.log.WithError(err).Error("error while recalculate")
			}
		}
	}
}

func (m *delayController) recalculate(ctx context.Context, factor int) error {
	var (
		recommendedDelay uint64
		err              error
	)

	shouldDecrease := true

	for _, limiter := range m.windowLimiters {
		recommendedDelay, err = limiter.TooFast(ctx)
		if err != nil {
			return err
		}

		delay := int64(recommendedDelay) * int64(factor)

		if recommendedDelay > 0 {
			shouldDecrease = false
		}

		if recommendedDelay > 0 && delay != m.delay {
			m.delay = delay
			m.log.
				WithField("limiter_duration", limiter.Duration()).
				WithField(delayKey, m.delay).
				Debug("delay increased")

			break
		}
	}

	if shouldDecrease && m.delay > 1 {
		if m.delay < 6 {
			m.delay--
		} else {
			m.delay /= 2
		}

		m.log.WithField(delayKey, m.delay).Debug("delay decreased")
	}

	m.setter(m.delay)

	return nil
}

func NewDelayManager(
	setter func(seconds int64),
	windowLimiters []windowlimiter.WindowLimiter,
	minimalDelay int64,
	log log.Logger,
) DelayManager {
	return &delayController{
		forceRecalculate: make(chan struct{}, 1000),
		setter:           setter,
		delay:            minimalDelay,
		windowLimiters:   windowLimiters,
		startTime:        time.Now(),
		log:              log,
	}
}
