package application

import (
	"context"
	"fmt"
	"time"

	"github.com/shadowbane/nautic/pkg/config"
	"github.com/shadowbane/nautic/pkg/database"
	"github.com/shadowbane/nautic/pkg/fetcher"
	"github.com/shadowbane/nautic/pkg/logger"
	"github.com/shadowbane/nautic/pkg/metrics"
	"github.com/shadowbane/nautic/pkg/openmeteo"
	"github.com/shadowbane/nautic/pkg/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Application struct {
	Cfg     *config.Config
	DB      *gorm.DB
	Metrics *metrics.Metrics

	// Location is the zone "today" is computed in
	Location *time.Location
	// Now is the clock used by day offsets
	Now func() time.Time

	ForecastFetcher *fetcher.ForecastFetcher
}

// Start loads configuration, connects the database and wires every component
func Start() (*Application, error) {
	cfg := config.Load()

	if _, err := logger.Init(cfg.GetLogLevel(), cfg.IsProduction(), cfg.GetLogFile()); err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	zap.S().Info("Starting Nautic conditions service")

	db, err := database.Open(cfg.GetDBConnection(), cfg.GetDatabaseURL(), !cfg.IsProduction())
	if err != nil {
		return nil, err
	}

	zap.S().Debug("Running migrations")
	if err := repository.Migrate(db); err != nil {
		return nil, fmt.Errorf("error running auto migration: %w", err)
	}

	if _, err := repository.SeedSpots(context.Background(), db); err != nil {
		return nil, fmt.Errorf("error seeding spots: %w", err)
	}

	return New(cfg, db), nil
}

// New wires the application around an open database
func New(cfg *config.Config, db *gorm.DB) *Application {
	m := metrics.New()
	loc := cfg.GetLocation()

	client := openmeteo.NewClient(cfg.GetForecastBaseURL(), cfg.GetMarineBaseURL(), cfg.GetForecastTimeout())
	forecastFetcher := fetcher.NewForecastFetcher(db, client, m, fetcher.Options{
		Days:        cfg.GetForecastDays(),
		Concurrency: cfg.GetFetchConcurrency(),
		ProviderID:  cfg.GetProviderID(),
		CacheTTL:    cfg.GetForecastCacheTTL(),
		Location:    loc,
	})

	return &Application{
		Cfg:             cfg,
		DB:              db,
		Metrics:         m,
		Location:        loc,
		Now:             time.Now,
		ForecastFetcher: forecastFetcher,
	}
}

// StartBackgroundJobs starts all background jobs
func (app *Application) StartBackgroundJobs() {
	if !app.Cfg.IsSyncEnabled() {
		zap.S().Info("Forecast sync disabled")
		return
	}
	app.ForecastFetcher.StartPeriodicFetch(app.Cfg.GetForecastFetchInterval())
}

// StopBackgroundJobs stops all background jobs
func (app *Application) StopBackgroundJobs() {
	app.ForecastFetcher.Stop()
}

// Close releases the database pool
func (app *Application) Close() error {
	sqlDB, err := app.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
