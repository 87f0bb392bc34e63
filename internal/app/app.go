package app

import (
	"context"
	"log/slog"

	"github.com/kkcodebase/movie-mood-predictor/internal/catalog"
	"github.com/kkcodebase/movie-mood-predictor/internal/config"
	http_health "github.com/kkcodebase/movie-mood-predictor/internal/delivery/http/health"
	http_init "github.com/kkcodebase/movie-mood-predictor/internal/delivery/http/init"
	http_play "github.com/kkcodebase/movie-mood-predictor/internal/delivery/http/play"
	ws_watchlist "github.com/kkcodebase/movie-mood-predictor/internal/delivery/ws/watchlist"
	infra_memory_watchlist "github.com/kkcodebase/movie-mood-predictor/internal/infra/memory/watchlist"
	infra_pg_init "github.com/kkcodebase/movie-mood-predictor/internal/infra/postgres/init"
	infra_postgres_catalog "github.com/kkcodebase/movie-mood-predictor/internal/infra/postgres/catalog"
	infra_redis_init "github.com/kkcodebase/movie-mood-predictor/internal/infra/redis/init"
	infra_redis_review "github.com/kkcodebase/movie-mood-predictor/internal/infra/redis/review"
	infra_redis_watchlist "github.com/kkcodebase/movie-mood-predictor/internal/infra/redis/watchlist"
	infra_sentiment_local "github.com/kkcodebase/movie-mood-predictor/internal/infra/sentiment/local"
	infra_sentiment_remote "github.com/kkcodebase/movie-mood-predictor/internal/infra/sentiment/remote"
	"github.com/kkcodebase/movie-mood-predictor/internal/logging"
	"github.com/kkcodebase/movie-mood-predictor/internal/metrics"
	"github.com/kkcodebase/movie-mood-predictor/internal/service/recommend"
	"github.com/kkcodebase/movie-mood-predictor/internal/service/sentiment"
	storage_watchlist "github.com/kkcodebase/movie-mood-predictor/internal/storage/watchlist"
	usecase_review "github.com/kkcodebase/movie-mood-predictor/internal/usecase/review"
	usecase_suggest "github.com/kkcodebase/movie-mood-predictor/internal/usecase/suggest"
	usecase_watchlist "github.com/kkcodebase/movie-mood-predictor/internal/usecase/watchlist"
)

func Go(cfg *config.Config) {
	logger := logging.Setup("moodplay", cfg.Logging.Debug)
	slog.SetDefault(logger)

	metricsProvider := metrics.NewProvider(cfg.Metrics.Enabled)

	ctlg := loadCatalog(cfg, logger)

	redisConn := infra_redis_init.EstablishConn(cfg.Redis, logger)
	watchlistDB := infra_redis_watchlist.New(redisConn, cfg.Tables.Watchlist)
	reviewDB := infra_redis_review.New(redisConn, cfg.Tables.Reviews)
	watchlistFallback := infra_memory_watchlist.New()

	watchlistStorage := storage_watchlist.New(watchlistDB, watchlistFallback,
		storage_watchlist.WithLogger(logger),
		storage_watchlist.WithFallbackCounter(metricsProvider),
	)

	classifier := sentiment.New(
		sentiment.WithPrimary(primaryClassifier(cfg, logger)),
		sentiment.WithLogger(logger),
		sentiment.WithFallbackCounter(metricsProvider),
	)

	engine := recommend.New(ctlg)

	reviewUC := usecase_review.New(classifier, reviewDB, engine,
		usecase_review.WithLogger(logger),
	)
	watchlistUC := usecase_watchlist.New(watchlistStorage)
	suggestUC := usecase_suggest.New(engine)

	hub := ws_watchlist.NewHub(ws_watchlist.WithLogger(logger))
	go hub.Run()

	pool := http_init.NewControllerPool(logger, metricsProvider, cfg.Metrics.Enabled)
	pool.Add(http_play.New(reviewUC, watchlistUC, suggestUC, hub,
		http_play.WithLogger(logger),
	))
	http_health.New().RegisterRoot(pool.Engine())

	pool.Register()
	pool.RunAll(cfg.HTTP.Port)
}

// loadCatalog resolves the movie catalog at process start. Any failure on
// the postgres path degrades to the built-in catalog.
func loadCatalog(cfg *config.Config, logger *slog.Logger) *catalog.Catalog {
	if cfg.Catalog.Source != config.CatalogSourcePostgres {
		return catalog.Default()
	}

	db, err := infra_pg_init.EstablishConn(cfg.Postgres)
	if err != nil {
		logger.Warn("postgres unavailable, using built-in catalog",
			slog.String("error", err.Error()),
		)
		return catalog.Default()
	}

	entries, err := infra_postgres_catalog.New(db).Load(context.Background())
	if err != nil || len(entries) == 0 {
		logger.Warn("catalog load failed, using built-in catalog",
			slog.Any("error", err),
		)
		return catalog.Default()
	}

	return catalog.New(entries)
}

// primaryClassifier picks the configured primary backend; nil means the
// keyword lexicon answers everything.
func primaryClassifier(cfg *config.Config, logger *slog.Logger) sentiment.Classifier {
	switch cfg.Sentiment.Mode {
	case config.SentimentModeRemote:
		if cfg.Sentiment.URL == "" {
			logger.Warn("SENTIMENT_MODE=remote without SENTIMENT_URL, using keyword classifier")
			return nil
		}
		return infra_sentiment_remote.New(cfg.Sentiment.URL)

	case config.SentimentModeLocal:
		driver, err := infra_sentiment_local.New()
		if err != nil {
			logger.Warn("local sentiment model unavailable, using keyword classifier",
				slog.String("error", err.Error()),
			)
			return nil
		}
		return driver

	default:
		return nil
	}
}
