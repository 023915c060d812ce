package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/riskibarqy/club-admin/internal/config"
	"github.com/riskibarqy/club-admin/internal/domain/club"
	"github.com/riskibarqy/club-admin/internal/domain/country"
	"github.com/riskibarqy/club-admin/internal/domain/match"
	"github.com/riskibarqy/club-admin/internal/domain/player"
	"github.com/riskibarqy/club-admin/internal/domain/position"
	"github.com/riskibarqy/club-admin/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/club-admin/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/club-admin/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/club-admin/internal/platform/id"
	"github.com/riskibarqy/club-admin/internal/platform/logging"
	"github.com/riskibarqy/club-admin/internal/platform/metrics"
	"github.com/riskibarqy/club-admin/internal/platform/workerpool"
	"github.com/riskibarqy/club-admin/internal/usecase"
)

const metricsNamespace = "club_admin"

type repositories struct {
	matches   match.Repository
	players   player.Repository
	clubs     club.Repository
	countries country.Repository
	positions position.Repository
}

// NewHTTPServer builds the whole service graph. The returned cleanup
// releases the rating worker pool and the database handle and must run
// after the server has shut down.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, closeDB, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	pool, err := workerpool.New(cfg.RatingWorkers)
	if err != nil {
		if closeDB != nil {
			closeDB()
		}
		return nil, nil, fmt.Errorf("build rating worker pool: %w", err)
	}

	var (
		recorder       *metrics.Recorder
		metricsHandler http.Handler
	)
	if cfg.MetricsEnabled {
		registry := prometheus.NewRegistry()
		recorder = metrics.NewRecorder(metricsNamespace)
		if err := recorder.Register(registry); err != nil {
			pool.Release()
			if closeDB != nil {
				closeDB()
			}
			return nil, nil, fmt.Errorf("register rating metrics: %w", err)
		}
		metricsHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	}

	idGenerator := idgen.NewRandomGenerator()

	matchSvc := usecase.NewMatchService(
		repos.matches,
		repos.players,
		repos.clubs,
		pool,
		idGenerator,
		recorder,
		logger,
	)
	playerSvc := usecase.NewPlayerService(
		repos.players,
		repos.positions,
		repos.countries,
		repos.clubs,
		idGenerator,
		logger,
	)
	clubSvc := usecase.NewClubService(repos.clubs, idGenerator)
	directorySvc := usecase.NewDirectoryService(repos.countries, repos.positions)

	handler := httpapi.NewHandler(matchSvc, playerSvc, clubSvc, directorySvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, metricsHandler)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		pool.Release()
		if closeDB != nil {
			closeDB()
		}
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	cleanup := func() {
		pool.Release()
		if closeDB != nil {
			closeDB()
		}
	}

	return server, cleanup, nil
}

// buildRepositories picks postgres when DB_URL is set and falls back to the
// seeded in-memory store otherwise, so the API runs without any backing
// service in local development.
func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, func(), error) {
	if strings.TrimSpace(cfg.DBURL) == "" {
		logger.Info("repositories configured", "driver", "memory")
		return repositories{
			matches:   memory.NewMatchRepository(),
			players:   memory.NewPlayerRepository(memory.SeedPlayers()),
			clubs:     memory.NewClubRepository(memory.SeedClubs()),
			countries: memory.NewCountryRepository(memory.SeedCountries(), memory.SeedNationalTeams()),
			positions: memory.NewPositionRepository(memory.SeedPositions()),
		}, nil, nil
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return repositories{}, nil, err
	}

	logger.Info("repositories configured", "driver", "postgres", "database", dbNameFromURL(cfg.DBURL))

	return repositories{
		matches:   postgres.NewMatchRepository(db),
		players:   postgres.NewPlayerRepository(db),
		clubs:     postgres.NewClubRepository(db),
		countries: postgres.NewCountryRepository(db),
		positions: postgres.NewPositionRepository(db),
	}, func() { _ = db.Close() }, nil
}

func openDatabase(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := otelsqlx.ConnectContext(ctx, "postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}
