package forecast

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/shadowbane/nautic/pkg/application"
	"github.com/shadowbane/nautic/pkg/conditions"
	"github.com/shadowbane/nautic/pkg/models"
	"github.com/shadowbane/nautic/pkg/repository"
	"github.com/shadowbane/nautic/pkg/suitability"
	traits "github.com/shadowbane/nautic/pkg/traits/controller-traits"
	"go.uber.org/zap"
)

// StatResponse is min/avg/max of a series, null when unknown
type StatResponse struct {
	Min *float64 `json:"min"`
	Avg *float64 `json:"avg"`
	Max *float64 `json:"max"`
}

// ActivityResponse is the day-0 score of one supported activity
type ActivityResponse struct {
	Activity suitability.Activity `json:"activity"`
	Label    suitability.Label    `json:"label"`
	Color    string               `json:"color"`
}

// Response is the body of GET /api/forecast/:spotId
type Response struct {
	Spot       models.SpotResponse     `json:"spot"`
	Available  bool                    `json:"available"`
	UpdatedAt  *time.Time              `json:"updated_at"`
	Current    models.Current          `json:"current"`
	Rating     *suitability.Rating     `json:"rating"`
	Today      map[string]StatResponse `json:"today"`
	Activities []ActivityResponse      `json:"activities"`
}

func toStat(values []float64) StatResponse {
	s := suitability.Stats(values)
	return StatResponse{
		Min: models.NullableFloat(s.Min),
		Avg: models.NullableFloat(s.Avg),
		Max: models.NullableFloat(s.Max),
	}
}

func toResponse(spot models.Spot, reading models.Reading) Response {
	resp := Response{
		Spot:      spot.ToResponse(),
		Available: !reading.Empty(),
		Current:   reading.Current,
		Today: map[string]StatResponse{
			models.VariableWaveHeight:  toStat(suitability.DaySlice(reading.Hourly.WaveHeight, 0)),
			models.VariableWindSpeed:   toStat(suitability.DaySlice(reading.Hourly.WindSpeed, 0)),
			models.VariableTemperature: toStat(suitability.DaySlice(reading.Hourly.Temperature, 0)),
		},
		Activities: make([]ActivityResponse, 0, 2),
	}

	if resp.Available {
		updated := reading.FetchedAt
		resp.UpdatedAt = &updated

		rating := suitability.RateNow(models.Float(reading.Current.WaveHeight), models.Float(reading.Current.WindSpeed))
		resp.Rating = &rating
	}

	means := conditions.FromReading(reading, 0)
	for _, activity := range spot.Activities() {
		label, err := suitability.Assess(activity, means.WindSpeed, means.WaveHeight, means.Precipitation)
		if err != nil {
			label = suitability.LabelNoData
		}
		resp.Activities = append(resp.Activities, ActivityResponse{
			Activity: activity,
			Label:    label,
			Color:    suitability.Color(label),
		})
	}

	return resp
}

// Show returns the detailed forecast of one spot
func Show(app *application.Application) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		id, err := strconv.ParseUint(p.ByName("spotId"), 10, 64)
		if err != nil {
			traits.WriteErrorResponse(w, http.StatusBadRequest, "spotId requerido")
			return
		}

		spot, err := repository.FindSpot(r.Context(), app.DB, uint(id))
		if errors.Is(err, repository.ErrSpotNotFound) {
			traits.WriteErrorResponse(w, http.StatusNotFound, "Spot no encontrado")
			return
		}
		if err != nil {
			zap.S().Errorf("Failed to load spot %d: %v", id, err)
			traits.WriteErrorResponse(w, http.StatusInternalServerError, "Error cargando spot")
			return
		}

		readings := app.ForecastFetcher.Snapshot(r.Context(), []models.Spot{*spot})
		traits.WriteResponse(w, toResponse(*spot, readings[spot.ID]))
	}
}
