package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/kelseyhightower/envconfig"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.elastic.co/ecslogrus"
	"golang.org/x/term"

	"github.com/sentinelgraph/sentinel-scraper/internal/accounts"
	"github.com/sentinelgraph/sentinel-scraper/internal/log"
	repo "github.com/sentinelgraph/sentinel-scraper/internal/repo/redis"
)

const (
	pkgKey = "pkg"
)

type config struct {
	LoggerLevel  logrus.Level `envconfig:"LOG_LEVEL" default:"info"`
	LogToEcs     bool         `envconfig:"LOG_TO_ECS" default:"false"`
	RedisAddress string       `default:"localhost:6379"`
}

func main() {
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

	db := redis.NewClient(&redis.Options{Addr: cfg.RedisAddress})

	st := repo.NewDB(db, logger.WithField(pkgKey, "repo"))

	accountCfg := accounts.GetConfig()

	if accountCfg.Password == "" {
		password, err := readPassword(accountCfg.Login)
		if err != nil {
			panic(err)
		}

		accountCfg.Password = password
	}

	if err := accounts.NewManager(st, logger.WithField(pkgKey, "accounts")).AddAccount(ctx, accountCfg); err != nil {
		panic(err)
	}

	logger.Info("account added")
}

func readPassword(login string) (string, error) {
	fmt.Printf("password for %s: ", login)

	password, err := term.ReadPassword(int(os.Stdin.Fd()))

	fmt.Println()

	if err != nil {
		return "", err
	}

	return string(password), nil
}
