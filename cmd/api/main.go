package main

import (
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	"siamstay/internal/adapters/httpserver"
	"siamstay/internal/adapters/observability"
	"siamstay/internal/adapters/payment"
	redisad "siamstay/internal/adapters/redis"
	"siamstay/internal/app"
	"siamstay/internal/domain"
	"siamstay/internal/shared"
	"siamstay/internal/storage/memory"
	mysqlrepo "siamstay/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// catalog: bundled in-memory seed by default, MySQL when configured
	var catalog domain.CatalogRepository
	switch cfg.CatalogDriver {
	case "mysql":
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("database connection ok")
		catalog = mysqlrepo.New(db)
	default:
		catalog = memory.NewStore()
		log.Info().Msg("using bundled in-memory catalog")
	}

	// deps
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	q := app.NewQueryService(catalog, cache, cfg.CacheTTL)
	gateway := payment.New(cfg.SubmitLatency)
	wizard := app.NewWizard(catalog, gateway)
	reviews := app.NewReviewThreads(catalog, memory.SeedReviews)

	// http
	srv := httpserver.New(cfg.RateLimitRPS)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&httpserver.Handlers{
		Q: q, W: wizard, R: reviews,
		Provinces:      memory.Provinces,
		AmenityOptions: memory.AmenityOptions,
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
