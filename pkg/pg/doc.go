// Package pg provides a small PostgreSQL bootstrap layer on top of pgx/v5:
// pooled connections with retry, goose schema migrations, a health probe,
// and error classifiers for common SQLSTATE codes.
//
// Config fields are populated from environment variables (see the `env`
// tags) so the same binary can be tuned per environment. Connect retries
// with growing backoff and verifies each attempt with a ping; Migrate
// bridges the pool into database/sql for goose and routes goose output
// through the application's structured logger.
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, slog.Default()); err != nil {
//	    return err
//	}
package pg
