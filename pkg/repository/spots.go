// Package repository holds the SQL access of the service.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/shadowbane/nautic/pkg/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrSpotNotFound is returned when a spot id has no row
var ErrSpotNotFound = errors.New("spot not found")

// ListSpots returns every spot ordered by name, with its sports loaded
func ListSpots(ctx context.Context, db *gorm.DB) ([]models.Spot, error) {
	var spots []models.Spot
	if err := db.WithContext(ctx).Preload("Sports").Order("nombre").Find(&spots).Error; err != nil {
		return nil, fmt.Errorf("failed to list spots: %w", err)
	}
	return spots, nil
}

// FindSpot loads one spot by id
func FindSpot(ctx context.Context, db *gorm.DB, id uint) (*models.Spot, error) {
	var spot models.Spot
	err := db.WithContext(ctx).Preload("Sports").First(&spot, "id_spot = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %d", ErrSpotNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load spot %d: %w", id, err)
	}
	return &spot, nil
}

type seedSpot struct {
	name   string
	lat    float64
	lon    float64
	sports []string
}

// defaultSpots is the coastal registry from Buenos Aires province
var defaultSpots = []seedSpot{
	{"San Clemente del Tuyú", -36.3567, -56.7233, []string{"kite"}},
	{"Santa Teresita", -36.5417, -56.7083, []string{"surf", "kite"}},
	{"San Bernardo", -36.7000, -56.7000, []string{"kite"}},
	{"Mar de Ajó", -36.7167, -56.6833, []string{"surf", "kite"}},
	{"Mar de las Pampas", -37.3167, -57.0167, []string{"surf", "kite"}},
	{"Cariló", -37.1833, -56.9000, []string{"surf", "kite"}},
	{"Pinamar", -37.1094, -56.8567, []string{"surf", "kite"}},
	{"Villa Gesell", -37.2645, -56.9729, []string{"surf", "kite"}},
	{"Mar del Plata", -38.0055, -57.5426, []string{"surf", "kite"}},
	{"Miramar", -38.2667, -57.8333, []string{"surf"}},
	{"Necochea", -38.5545, -58.7390, []string{"surf"}},
	{"Claromecó", -38.8667, -60.0833, []string{"surf"}},
	{"Monte Hermoso", -38.9833, -61.2833, []string{"surf"}},
}

// SeedSpots inserts the default registry when the spot table is empty.
// It returns the number of spots created.
func SeedSpots(ctx context.Context, db *gorm.DB) (int, error) {
	var total int64
	if err := db.WithContext(ctx).Model(&models.Spot{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count spots: %w", err)
	}
	if total > 0 {
		return 0, nil
	}

	count := 0
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sports := make(map[string]models.Sport)
		for _, seed := range defaultSpots {
			for _, name := range seed.sports {
				if _, ok := sports[name]; ok {
					continue
				}
				sport := models.Sport{Name: name}
				if err := tx.Where(models.Sport{Name: name}).FirstOrCreate(&sport).Error; err != nil {
					return fmt.Errorf("failed to create sport %s: %w", name, err)
				}
				sports[name] = sport
			}
		}

		for _, seed := range defaultSpots {
			spot := models.Spot{Name: seed.name, Lat: seed.lat, Lon: seed.lon}
			for _, name := range seed.sports {
				spot.Sports = append(spot.Sports, sports[name])
			}
			if err := tx.Create(&spot).Error; err != nil {
				return fmt.Errorf("failed to create spot %s: %w", seed.name, err)
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	zap.S().Infof("Seeded %d spots", count)
	return count, nil
}
