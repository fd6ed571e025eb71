package scraper

import (
	"context"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/eko/gocache/lib/v4/cache"
	libstore "github.com/eko/gocache/lib/v4/store"
	ristrettostore "github.com/eko/gocache/store/ristretto/v4"

	"github.com/sentinelgraph/sentinel-scraper/internal/common"
)

const (
	cacheNumCounters = 10000
	cacheMaxCost     = 1 << 20
	cacheBufferItems = 64
)

// profileCache keeps recently fetched user profiles so repeated GetUser calls
// do not burn account request budget.
type profileCache struct {
	cache *cache.Cache[*common.UserProfile]
}

func (p *profileCache) init(ttl time.Duration) error {
	client, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: cacheNumCounters,
		MaxCost:     cacheMaxCost,
		BufferItems: cacheBufferItems,
	})
	if err != nil {
		return err
	}

	store := ristrettostore.NewRistretto(client, libstore.WithExpiration(ttl))
	p.cache = cache.New[*common.UserProfile](store)

	return nil
}

func (p *profileCache) get(ctx context.Context, username string) (*common.UserProfile, bool) {
	if p.cache == nil {
		return nil, false
	}

	profile, err := p.cache.Get(ctx, username)
	if err != nil {
		return nil, false
	}

	return profile, true
}

func (p *profileCache) set(ctx context.Context, username string, profile *common.UserProfile) {
	if p.cache == nil {
		return
	}

	_ = p.cache.Set(ctx, username, profile, libstore.WithCost(1))
}
