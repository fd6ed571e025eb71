package sink

import "github.com/kelseyhightower/envconfig"

type Config struct {
	OutputDir        string   `envconfig:"OUTPUT_DIR" default:"data/raw"`
	ElasticAddresses []string `envconfig:"ELASTIC_ADDRESSES"`
	ElasticIndex     string   `envconfig:"ELASTIC_INDEX" default:"tweets"`
}

func GetConfig() Config {
	cfg := new(Config)
	if err := envconfig.Process("SINK", cfg); err != nil {
		panic(err)
	}

	return *cfg
}
