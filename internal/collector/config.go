package collector

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Queries        []string      `envconfig:"QUERIES" default:"india,bjp,congress"`
	SearchInterval time.Duration `envconfig:"SEARCH_INTERVAL" default:"1m"`
	SearchLimit    int           `envconfig:"SEARCH_LIMIT" default:"100"`
}

func GetConfig() *Config {
	cfg := new(Config)
	if err := envconfig.Process("COLLECTOR", cfg); err != nil {
		panic(err)
	}

	return cfg
}
