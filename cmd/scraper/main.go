package main

import (
	"context"
	"flag"
	"fmt"
	"os/signal"
	"syscall"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/kelseyhightower/envconfig"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.elastic.co/ecslogrus"

	"github.com/sentinelgraph/sentinel-scraper/internal/accounts"
	"github.com/sentinelgraph/sentinel-scraper/internal/collector"
	"github.com/sentinelgraph/sentinel-scraper/internal/envcheck"
	"github.com/sentinelgraph/sentinel-scraper/internal/httpserver"
	"github.com/sentinelgraph/sentinel-scraper/internal/log"
	repo "github.com/sentinelgraph/sentinel-scraper/internal/repo/redis"
	"github.com/sentinelgraph/sentinel-scraper/internal/scraper"
	"github.com/sentinelgraph/sentinel-scraper/internal/sink"
)

var version = "dev"

const pkgKey = "pkg"

type config struct {
	LoggerLevel  logrus.Level `envconfig:"LOG_LEVEL" default:"info"`
	LogToEcs     bool         `envconfig:"LOG_TO_ECS" default:"false"`
	RedisAddress string       `default:"localhost:6379"`
	HTTPAddress  string       `envconfig:"HTTP_ADDRESS" default:":8080"`
}

func main() {
	printVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *printVersion {
		fmt.Println(version)
		return
	}

	// init main config
	cfg := new(config)
	if err := envconfig.Process("", cfg); err != nil {
		panic(err)
	}

	// init logger
	logrusLogger := logrus.New()
	logrusLogger.SetLevel(cfg.LoggerLevel)
	logrusLogger.SetFormatter(&nested.Formatter{
		FieldsOrder:     []string{pkgKey},
		TimestampFormat: "01-02|15:04:05",
	})

	if cfg.LogToEcs {
		logrusLogger.SetFormatter(&ecslogrus.Formatter{})
	}

	logger := log.NewLogger(logrusLogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.WithField("cluster_location", cfg.RedisAddress).Info("starting redis connection")

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddress})

	st := repo.NewDB(client, logger.WithField(pkgKey, "repo"))

	if err := st.Migrate(ctx); err != nil {
		panic(err)
	}

	accountManager := accounts.NewManager(st, logger.WithField(pkgKey, "accounts"))

	manager := scraper.NewManager(scraper.GetConfig(), accountManager, st, logger.WithField(pkgKey, "scraper"))

	if err := manager.Init(ctx); err != nil {
		panic(err)
	}

	sinkCfg := sink.GetConfig()

	sinks := []sink.Sink{sink.NewJSON(sinkCfg.OutputDir, logger.WithField(pkgKey, "json_sink"))}

	if len(sinkCfg.ElasticAddresses) > 0 {
		es, err := sink.NewElastic(sinkCfg.ElasticAddresses, sinkCfg.ElasticIndex, logger.WithField(pkgKey, "elastic_sink"))
		if err != nil {
			panic(err)
		}

		sinks = append(sinks, es)
	}

	watcher := collector.NewCollector(
		collector.GetConfig(),
		manager,
		st,
		sink.Multi(sinks...),
		logger.WithField(pkgKey, "collector"),
	)
	watcher.Watch(ctx)

	checker := envcheck.NewChecker(st, st, manager)

	srv := httpserver.NewServer(cfg.HTTPAddress, checker, logger.WithField(pkgKey, "http"))

	go func() {
		if err := srv.Run(ctx); err != nil {
			logger.WithError(err).Error("http server stopped")
		}
	}()

	logger.Info("service started")
	<-ctx.Done()
}
