package scraper

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Proxies         []string      `envconfig:"PROXIES"`
	SearchLimit     int           `envconfig:"SEARCH_LIMIT" default:"100"`
	TimelineLimit   int           `envconfig:"TIMELINE_LIMIT" default:"200"`
	ProfileCacheTTL time.Duration `envconfig:"PROFILE_CACHE_TTL" default:"15m"`
}

func GetConfig() Config {
	cfg := new(Config)
	if err := envconfig.Process("SCRAPER", cfg); err != nil {
		panic(err)
	}

	return *cfg
}
