package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kelseyhightower/envconfig"
	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/sentinelgraph/sentinel-scraper/internal/envcheck"
	"github.com/sentinelgraph/sentinel-scraper/internal/log"
	repo "github.com/sentinelgraph/sentinel-scraper/internal/repo/redis"
)

type config struct {
	RedisAddress string `default:"localhost:6379"`
}

func main() {
	cfg := new(config)
	if err := envconfig.Process("", cfg); err != nil {
		panic(err)
	}

	// checker output goes to stdout, keep logs quiet
	logrusLogger := logrus.New()
	logrusLogger.SetLevel(logrus.ErrorLevel)

	logger := log.NewLogger(logrusLogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := redis.NewClient(&redis.Options{Addr: cfg.RedisAddress})

	st := repo.NewDB(db, logger)

	report := envcheck.NewChecker(st, st, nil).Check(ctx)

	data, err := jsoniter.MarshalIndent(&report, "", "  ")
	if err != nil {
		panic(err)
	}

	fmt.Println(string(data))

	if !report.Ready() {
		os.Exit(1)
	}
}
