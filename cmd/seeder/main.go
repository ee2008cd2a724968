package main

import (
	"context"
	"database/sql"
	"os"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/semaphore"

	"siamstay/internal/adapters/observability"
	"siamstay/internal/shared"
	"siamstay/internal/storage/memory"
	mysqlrepo "siamstay/internal/storage/mysql"
)

// seeder loads the bundled catalog into MySQL so the API can run with
// CATALOG_DRIVER=mysql.
func main() {
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	var (
		dsn     string
		workers int
	)

	root := &cobra.Command{
		Use:   "seeder",
		Short: "Load the bundled hotel catalog into MySQL",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), dsn, workers)
		},
	}
	root.Flags().StringVar(&dsn, "dsn", cfg.MySQLDSN, "MySQL DSN")
	root.Flags().IntVar(&workers, "workers", cfg.Workers, "concurrent upsert workers")

	if err := root.ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Msg("seeding failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, dsn string, workers int) error {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		return err
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}

	hotels, err := memory.NewStore().ListHotels(ctx)
	if err != nil {
		return err
	}
	log.Info().Int("hotels", len(hotels)).Int("workers", workers).Msg("seeder starting")

	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for _, h := range hotels {
		h := h

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			return err
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			if err := repo.UpsertHotel(ctx, h); err != nil {
				log.Warn().Str("id", h.ID).Err(err).Msg("upsert failed")
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			log.Info().Str("id", h.ID).Msg("upsert ok")
		}()
	}

	wg.Wait()
	if firstErr != nil {
		return firstErr
	}
	log.Info().Msg("seeding completed")
	return nil
}
