package fetcher

import (
	"context"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/patrickmn/go-cache"
	"github.com/shadowbane/nautic/pkg/metrics"
	"github.com/shadowbane/nautic/pkg/models"
	"github.com/shadowbane/nautic/pkg/openmeteo"
	"github.com/shadowbane/nautic/pkg/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Options tunes a ForecastFetcher
type Options struct {
	Days        int
	Concurrency int
	ProviderID  int64
	CacheTTL    time.Duration
	Location    *time.Location
}

// ForecastFetcher fetches Open-Meteo readings per spot, caches them and
// periodically writes them to the variable table
type ForecastFetcher struct {
	db      *gorm.DB
	client  *openmeteo.Client
	metrics *metrics.Metrics
	cache   *cache.Cache
	opts    Options
	now     func() time.Time

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewForecastFetcher creates a new ForecastFetcher instance
func NewForecastFetcher(db *gorm.DB, client *openmeteo.Client, m *metrics.Metrics, opts Options) *ForecastFetcher {
	if opts.Days < 1 {
		opts.Days = 1
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 10 * time.Minute
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}

	return &ForecastFetcher{
		db:       db,
		client:   client,
		metrics:  m,
		cache:    cache.New(opts.CacheTTL, 0), // no janitor, Get skips expired entries
		opts:     opts,
		now:      time.Now,
		stopChan: make(chan struct{}),
	}
}

// Snapshot returns one reading per spot, serving cached readings and
// fetching the rest concurrently. A spot whose fetch fails gets an empty reading.
func (f *ForecastFetcher) Snapshot(ctx context.Context, spots []models.Spot) map[uint]models.Reading {
	result := make(map[uint]models.Reading, len(spots))
	missing := make([]models.Spot, 0, len(spots))

	for _, spot := range spots {
		if cached, ok := f.cache.Get(cacheKey(spot.ID)); ok {
			result[spot.ID] = cached.(models.Reading)
			f.metrics.CacheHits.Inc()
			continue
		}
		missing = append(missing, spot)
	}

	for id, reading := range f.FetchAll(ctx, missing) {
		result[id] = reading
	}

	return result
}

// FetchAll fetches every spot with bounded concurrency, bypassing the cache.
// The batch never fails as a whole.
func (f *ForecastFetcher) FetchAll(ctx context.Context, spots []models.Spot) map[uint]models.Reading {
	result := make(map[uint]models.Reading, len(spots))
	if len(spots) == 0 {
		return result
	}

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(f.opts.Concurrency)

	for _, spot := range spots {
		g.Go(func() error {
			reading := f.fetchSpot(ctx, spot)

			mu.Lock()
			result[spot.ID] = reading
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return result
}

func (f *ForecastFetcher) fetchSpot(ctx context.Context, spot models.Spot) models.Reading {
	start := time.Now()
	defer func() {
		f.metrics.ForecastDuration.Observe(time.Since(start).Seconds())
	}()

	forecast, err := f.client.Forecast(ctx, spot.Lat, spot.Lon, f.opts.Days)
	if err != nil {
		zap.S().Warnf("Forecast fetch failed for %s: %v", spot.Name, err)
		f.metrics.ForecastFetches.WithLabelValues("error").Inc()
		return models.Reading{SpotID: spot.ID}
	}

	result := "ok"
	marine, err := f.client.Marine(ctx, spot.Lat, spot.Lon, f.opts.Days)
	if err != nil {
		zap.S().Warnf("Marine fetch failed for %s, wave height unavailable: %v", spot.Name, err)
		marine = nil
		result = "partial"
	}
	f.metrics.ForecastFetches.WithLabelValues(result).Inc()

	reading := openmeteo.ToReading(spot.ID, forecast, marine, f.now(), f.opts.Location)
	f.cache.Set(cacheKey(spot.ID), reading, cache.DefaultExpiration)

	return reading
}

// FetchAndStore fetches every registered spot and replaces this provider's
// rows for each spot's forecast horizon
func (f *ForecastFetcher) FetchAndStore(ctx context.Context) (int, error) {
	spots, err := repository.ListSpots(ctx, f.db)
	if err != nil {
		return 0, err
	}

	readings := f.FetchAll(ctx, spots)

	count := 0
	var errs *multierror.Error

	for _, spot := range spots {
		reading := readings[spot.ID]
		if reading.Empty() {
			continue
		}

		rows, window, ok := readingRows(f.opts.ProviderID, reading)
		if !ok {
			zap.S().Infof("No hourly data to store for %s", spot.Name)
			continue
		}

		n, err := repository.ReplaceReadings(ctx, f.db, f.opts.ProviderID, int64(spot.ID), window, rows)
		if err != nil {
			zap.S().Errorf("Failed to store readings for %s: %v", spot.Name, err)
			errs = multierror.Append(errs, err)
			continue
		}
		count += n
	}

	f.metrics.ReadingsStored.Add(float64(count))
	zap.S().Infof("Synced %d forecast readings for %d spots", count, len(spots))

	return count, errs.ErrorOrNil()
}

type series struct {
	id     int64
	name   string
	unit   string
	values []float64
}

// readingRows flattens the hourly series into variable rows. window spans
// the first to the last valid hour.
func readingRows(providerID int64, r models.Reading) ([]models.VariableMeteorologica, repository.Window, bool) {
	all := []series{
		{1, models.VariableTemperature, "°C", r.Hourly.Temperature},
		{2, models.VariableWindSpeed, "m/s", r.Hourly.WindSpeed},
		{3, models.VariablePrecipitation, "mm", r.Hourly.Precipitation},
		{4, models.VariableWaveHeight, "m", r.Hourly.WaveHeight},
	}

	fetchedAt := r.FetchedAt.UTC()
	var window repository.Window
	rows := make([]models.VariableMeteorologica, 0, len(r.Hourly.Time)*len(all))

	for i, at := range r.Hourly.Time {
		if at.IsZero() {
			continue
		}
		if window.Start.IsZero() || at.Before(window.Start) {
			window.Start = at
		}
		if end := at.Add(time.Hour); end.After(window.End) {
			window.End = end
		}

		for _, s := range all {
			if i >= len(s.values) || math.IsNaN(s.values[i]) {
				continue
			}
			rows = append(rows, models.VariableMeteorologica{
				IDVariable:          s.id,
				IDProveedor:         providerID,
				Spot:                int64(r.SpotID),
				Nombre:              s.name,
				Fecha:               at,
				TipoDato:            "forecast",
				Valor:               s.values[i],
				UnidadBase:          s.unit,
				UltimaActualizacion: &fetchedAt,
			})
		}
	}

	return rows, window, !window.Start.IsZero()
}

// StartPeriodicFetch fetches immediately, then on every interval tick until Stop
func (f *ForecastFetcher) StartPeriodicFetch(interval time.Duration) {
	zap.S().Infof("Starting periodic forecast sync every %v", interval)

	ctx, cancel := context.WithCancel(context.Background())

	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		defer cancel()

		if _, err := f.FetchAndStore(ctx); err != nil {
			zap.S().Errorf("Initial forecast sync failed: %v", err)
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				zap.S().Debug("Running scheduled forecast sync")
				if _, err := f.FetchAndStore(ctx); err != nil {
					zap.S().Errorf("Scheduled forecast sync failed: %v", err)
				}
			case <-f.stopChan:
				zap.S().Info("Stopping periodic forecast sync")
				return
			}
		}
	}()

	// cancel in-flight requests as soon as Stop is called
	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		select {
		case <-f.stopChan:
			cancel()
		case <-ctx.Done():
		}
	}()
}

// Stop stops the periodic fetching and waits for it to return
func (f *ForecastFetcher) Stop() {
	f.stopOnce.Do(func() {
		close(f.stopChan)
	})
	f.wg.Wait()
}

// Invalidate drops every cached reading
func (f *ForecastFetcher) Invalidate() {
	f.cache.Flush()
}

func cacheKey(id uint) string {
	return "spot:" + strconv.FormatUint(uint64(id), 10)
}
