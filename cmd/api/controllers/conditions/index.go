package conditions

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/shadowbane/nautic/pkg/application"
	"github.com/shadowbane/nautic/pkg/conditions"
	"github.com/shadowbane/nautic/pkg/models"
	"github.com/shadowbane/nautic/pkg/repository"
	"github.com/shadowbane/nautic/pkg/suitability"
	traits "github.com/shadowbane/nautic/pkg/traits/controller-traits"
	"go.uber.org/zap"
)

const (
	SourceForecast = "forecast"
	SourceBackend  = "backend"
)

// Response is the body of GET /api/conditions
type Response struct {
	Day     int                 `json:"day"`
	Source  string              `json:"source"`
	Sports  []string            `json:"sports"`
	Markers []conditions.Marker `json:"markers"`
}

// Index scores every visible spot for the selected sports and day
func Index(app *application.Application) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		query := r.URL.Query()

		selected, err := suitability.ParseActivities(query["sports"])
		if err != nil {
			traits.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}

		source := query.Get("source")
		if source == "" {
			source = SourceForecast
		}
		if source != SourceForecast && source != SourceBackend {
			traits.WriteErrorResponse(w, http.StatusBadRequest, "source must be forecast or backend")
			return
		}

		day := 0
		if raw := query.Get("day"); raw != "" {
			day, err = strconv.Atoi(raw)
			if err != nil {
				traits.WriteErrorResponse(w, http.StatusBadRequest, "day must be an integer")
				return
			}
		}
		if source == SourceForecast && (day < 0 || day >= suitability.MaxForecastDays) {
			traits.WriteErrorResponse(w, http.StatusBadRequest, "day must be between 0 and 6")
			return
		}

		spots, err := repository.ListSpots(r.Context(), app.DB)
		if err != nil {
			zap.S().Errorf("Failed to list spots: %v", err)
			traits.WriteErrorResponse(w, http.StatusInternalServerError, "Error listando spots")
			return
		}
		visible := suitability.FilterSpots(spots, selected)

		var meansOf func(models.Spot) conditions.Means
		switch source {
		case SourceBackend:
			averages, err := backendAverages(r, app, visible, day)
			if err != nil {
				zap.S().Errorf("Failed to average weather for day %d: %v", day, err)
				traits.WriteErrorResponse(w, http.StatusInternalServerError, "Error calculando promedios")
				return
			}
			meansOf = func(s models.Spot) conditions.Means {
				return conditions.FromAverage(averages[s.ID])
			}
		default:
			readings := app.ForecastFetcher.Snapshot(r.Context(), visible)
			meansOf = func(s models.Spot) conditions.Means {
				return conditions.FromReading(readings[s.ID], day)
			}
		}

		sports := make([]string, len(selected))
		for i, a := range selected {
			sports[i] = string(a)
		}

		traits.WriteResponse(w, Response{
			Day:     day,
			Source:  source,
			Sports:  sports,
			Markers: conditions.BuildMarkers(visible, selected, meansOf),
		})
	}
}

func backendAverages(r *http.Request, app *application.Application, spots []models.Spot, day int) (map[uint]models.DayAverage, error) {
	window := repository.DayWindow(app.Now(), app.Location, day)

	out := make(map[uint]models.DayAverage, len(spots))
	for _, spot := range spots {
		avg, err := repository.AverageByDay(r.Context(), app.DB, int64(spot.ID), window)
		if err != nil {
			return nil, err
		}
		out[spot.ID] = *avg
	}
	return out, nil
}
