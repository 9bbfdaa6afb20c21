package spots

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/shadowbane/nautic/pkg/application"
	"github.com/shadowbane/nautic/pkg/models"
	"github.com/shadowbane/nautic/pkg/repository"
	traits "github.com/shadowbane/nautic/pkg/traits/controller-traits"
	"go.uber.org/zap"
)

// Index lists spots with their lower-cased sports
func Index(app *application.Application) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		spots, err := repository.ListSpots(r.Context(), app.DB)
		if err != nil {
			zap.S().Errorf("Failed to list spots: %v", err)
			traits.WriteErrorResponse(w, http.StatusInternalServerError, "Error listando spots")
			return
		}

		responses := make([]models.SpotResponse, len(spots))
		for i, spot := range spots {
			responses[i] = spot.ToResponse()
		}

		traits.WriteResponse(w, responses)
	}
}

// parseSpotID accepts any finite integral number, so "7", " 7" and "7.0" are the same spot
func parseSpotID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return id, nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > math.MaxInt64/2 {
		return 0, fmt.Errorf("invalid spot id %q", raw)
	}
	return int64(f), nil
}

// WeatherAverage averages the stored variables of a spot for today + day
func WeatherAverage(app *application.Application) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		query := r.URL.Query()

		spotID, err := parseSpotID(query.Get("spotId"))
		if err != nil {
			traits.WriteErrorResponse(w, http.StatusBadRequest, "spotId requerido")
			return
		}

		day := 0
		if raw := query.Get("day"); raw != "" {
			day, err = strconv.Atoi(raw)
			if err != nil {
				traits.WriteErrorResponse(w, http.StatusBadRequest, "day debe ser un entero")
				return
			}
		}

		window := repository.DayWindow(app.Now(), app.Location, day)
		avg, err := repository.AverageByDay(r.Context(), app.DB, spotID, window)
		if err != nil {
			zap.S().Errorf("Failed to average weather for spot %d day %d: %v", spotID, day, err)
			traits.WriteErrorResponse(w, http.StatusInternalServerError, "Error calculando promedios")
			return
		}

		traits.WriteResponse(w, avg)
	}
}
