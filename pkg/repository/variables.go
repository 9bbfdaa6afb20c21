package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shadowbane/nautic/pkg/models"

	"gorm.io/gorm"
)

// Synonyms maps each canonical variable to the lower-cased names averaged into it.
// Rows matching none of them are ignored.
var Synonyms = map[string][]string{
	models.VariableTemperature:   {"temperature_2m", "temperatura", "temp"},
	models.VariableWindSpeed:     {"wind_speed_10m", "viento", "wind"},
	models.VariablePrecipitation: {"precipitation", "lluvia"},
	models.VariableWaveHeight:    {"wave_height", "olas", "oleaje"},
}

const averageQuery = `
SELECT
  AVG(CASE WHEN LOWER(nombre) IN ? THEN valor END) AS temperature_2m,
  AVG(CASE WHEN LOWER(nombre) IN ? THEN valor END) AS wind_speed_10m,
  AVG(CASE WHEN LOWER(nombre) IN ? THEN valor END) AS precipitation,
  AVG(CASE WHEN LOWER(nombre) IN ? THEN valor END) AS wave_height
FROM variable_meteorologica
WHERE spot = ? AND fecha >= ? AND fecha < ?`

// Window is a half-open time range [Start, End)
type Window struct {
	Start time.Time
	End   time.Time
}

// DayWindow returns the calendar day at offset days from now, in loc
func DayWindow(now time.Time, loc *time.Location, offset int) Window {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, offset)
	return Window{Start: start, End: start.AddDate(0, 0, 1)}
}

// InsertVariable stores a row and returns it with its generated id
func InsertVariable(ctx context.Context, db *gorm.DB, row *models.VariableMeteorologica) error {
	row.Fecha = row.Fecha.UTC()
	if err := db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to insert variable: %w", err)
	}
	return nil
}

// AverageByDay averages the spot's rows inside w per canonical variable.
// All fields are nil when no row falls in the window.
func AverageByDay(ctx context.Context, db *gorm.DB, spotID int64, w Window) (*models.DayAverage, error) {
	var avg models.DayAverage
	err := db.WithContext(ctx).Raw(averageQuery,
		Synonyms[models.VariableTemperature],
		Synonyms[models.VariableWindSpeed],
		Synonyms[models.VariablePrecipitation],
		Synonyms[models.VariableWaveHeight],
		spotID,
		w.Start.UTC(),
		w.End.UTC(),
	).Scan(&avg).Error
	if err != nil {
		return nil, fmt.Errorf("failed to average variables for spot %d: %w", spotID, err)
	}
	return &avg, nil
}

// ReplaceReadings swaps a provider's rows for one spot inside w with rows,
// in a single transaction.
func ReplaceReadings(ctx context.Context, db *gorm.DB, providerID, spotID int64, w Window, rows []models.VariableMeteorologica) (int, error) {
	count := 0
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id_proveedor = ? AND spot = ? AND fecha >= ? AND fecha < ?",
			providerID, spotID, w.Start.UTC(), w.End.UTC()).
			Delete(&models.VariableMeteorologica{}).Error; err != nil {
			return fmt.Errorf("failed to delete existing readings: %w", err)
		}

		if len(rows) == 0 {
			return nil
		}

		for i := range rows {
			rows[i].Fecha = rows[i].Fecha.UTC()
		}
		if err := tx.CreateInBatches(rows, 200).Error; err != nil {
			return fmt.Errorf("failed to insert readings: %w", err)
		}
		count = len(rows)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
