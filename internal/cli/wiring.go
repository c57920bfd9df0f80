package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"trivia-quiz/internal/app"
	"trivia-quiz/internal/config"
	"trivia-quiz/internal/infra/file"
	"trivia-quiz/internal/infra/memory"
	"trivia-quiz/internal/infra/opentdb"
	"trivia-quiz/internal/infra/postgres"
	redisstore "trivia-quiz/internal/infra/redis"
	"trivia-quiz/internal/logger"
)

// backends is everything a command needs, opened from one config.
type backends struct {
	cfg     config.Config
	logger  *zap.Logger
	cookies app.KeyValueStore
	ledger  *app.ScoreLedger
	source  app.QuestionSource

	closers []func()
}

func openBackends(ctx context.Context, configPath string) (*backends, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	b := &backends{cfg: cfg, logger: log}
	b.closers = append(b.closers, func() { _ = log.Sync() })
	if err := b.open(ctx); err != nil {
		b.Close()
		return nil, err
	}
	return b, nil
}

func (b *backends) open(ctx context.Context) error {
	cfg := b.cfg

	var redisClient *redis.Client
	if cfg.Identity.Backend == config.BackendRedis || cfg.Ledger.Backend == config.BackendRedis {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		b.closers = append(b.closers, func() { _ = redisClient.Close() })
		if err := redisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
	}

	switch cfg.Identity.Backend {
	case config.BackendMemory:
		b.cookies = memory.NewCookieStore()
	case config.BackendFile:
		b.cookies = file.NewCookieJar(filepath.Join(cfg.Storage.Dir, "cookies.txt"))
	case config.BackendRedis:
		b.cookies = redisstore.NewCookieStore(redisClient)
	}

	var log app.AppendOnlyLog
	switch cfg.Ledger.Backend {
	case config.BackendMemory:
		log = memory.NewScoreLog()
	case config.BackendFile:
		log = file.NewScoreLog(filepath.Join(cfg.Storage.Dir, cfg.Ledger.Key+".json"))
	case config.BackendRedis:
		log = redisstore.NewScoreLog(redisClient, cfg.Ledger.Key)
	case config.BackendPostgres:
		if _, err := postgres.Migrate(ctx, cfg.Postgres.URL); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		b.closers = append(b.closers, pool.Close)
		log = postgres.NewScoreLog(pool)
	}
	b.ledger = app.NewScoreLedger(log, b.logger)

	b.source = opentdb.NewClient(opentdb.Config{
		URL:        cfg.Questions.URL,
		Type:       cfg.Questions.Type,
		Category:   cfg.Questions.Category,
		Difficulty: cfg.Questions.Difficulty,
		Timeout:    config.TTLDuration(cfg.Questions.Timeout, 10*time.Second),
	})
	return nil
}

// identity returns the store for the named cookie.
func (b *backends) identity(name string) *app.IdentityStore {
	return app.NewIdentityStore(b.cookies, name, b.logger)
}

func (b *backends) sessionConfig(refetch bool) app.SessionConfig {
	return app.SessionConfig{
		BatchSize:          b.cfg.Questions.Amount,
		IdentityTTLDays:    b.cfg.Identity.TTLDays,
		RefetchAfterSubmit: refetch,
		Logger:             b.logger,
	}
}

// Close releases connections in reverse order of opening.
func (b *backends) Close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}
