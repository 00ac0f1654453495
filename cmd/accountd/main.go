// Command accountd serves the account module over HTTP, wiring together
// the Postgres repository, the optional Redis cache, and the validation
// strategy selected through the environment.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/finkit/accountkit/modules/account"
	"github.com/finkit/accountkit/modules/account/postgres"
	"github.com/finkit/accountkit/pkg/config"
	"github.com/finkit/accountkit/pkg/httpserver"
	"github.com/finkit/accountkit/pkg/logger"
	"github.com/finkit/accountkit/pkg/pg"
	"github.com/finkit/accountkit/pkg/redis"
	"github.com/finkit/accountkit/pkg/requestid"
)

type appConfig struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
}

func main() {
	var appCfg appConfig
	config.MustLoad(&appCfg)

	log := logger.New(
		logger.WithEnvironment(appCfg.Environment, "accountd"),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	if err := run(context.Background(), log); err != nil {
		log.Error("accountd exited", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger) error {
	var pgCfg pg.Config
	if err := config.Load(&pgCfg); err != nil {
		return err
	}

	pool, err := pg.Connect(ctx, pgCfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, pgCfg, log); err != nil {
		return err
	}

	var accCfg account.Config
	if err := config.Load(&accCfg); err != nil {
		return err
	}

	var repo account.Repository = postgres.NewStore(pool)
	healthchecks := []func(context.Context) error{pg.Healthcheck(pool)}

	if accCfg.CacheEnabled {
		var redisCfg redis.Config
		if err := config.Load(&redisCfg); err != nil {
			return err
		}

		rdb, err := redis.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer rdb.Close()

		repo = account.NewCachedRepository(repo, rdb,
			account.WithCacheTTL(accCfg.CacheTTL),
			account.WithCacheLogger(log),
		)
		healthchecks = append(healthchecks, redis.Healthcheck(rdb))
	}

	factoryOpts, err := accCfg.FactoryOptions()
	if err != nil {
		return err
	}

	svc := account.NewService(repo,
		account.WithFactory(account.NewFactory(factoryOpts...)),
		account.WithGenerator(account.NewNumberGenerator(repo, accCfg.GeneratorOptions()...)),
		account.WithLogger(log),
	)

	r := chi.NewRouter()
	r.Get("/health", httpserver.HealthCheckHandler(log, healthchecks...))
	r.Mount("/accounts", svc.Handle())

	var srvCfg httpserver.Config
	if err := config.Load(&srvCfg); err != nil {
		return err
	}

	log.Info("starting accountd",
		logger.Component("http"),
		logger.Strategy(accCfg.Strategy))

	srv := httpserver.NewFromConfig(srvCfg, httpserver.WithLogger(log))
	return srv.Run(ctx, r)
}
