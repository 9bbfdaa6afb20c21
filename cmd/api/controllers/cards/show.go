package cards

import (
	"errors"
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

// Show renders a spot as an HTML card. Query: sports, day, theme=dark, timezone.
func Show(app *application.Application) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		query := r.URL.Query()

		id, err := strconv.ParseUint(p.ByName("spotId"), 10, 64)
		if err != nil {
			traits.WriteErrorResponse(w, http.StatusBadRequest, "spotId requerido")
			return
		}

		selected, err := suitability.ParseActivities(query["sports"])
		if err != nil {
			traits.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}

		day := 0
		if raw := query.Get("day"); raw != "" {
			day, err = strconv.Atoi(raw)
			if err != nil || day < 0 || day >= suitability.MaxForecastDays {
				traits.WriteErrorResponse(w, http.StatusBadRequest, "day must be between 0 and 6")
				return
			}
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

		reading := app.ForecastFetcher.Snapshot(r.Context(), []models.Spot{*spot})[spot.ID]
		activity, label := conditions.Score(*spot, selected, conditions.FromReading(reading, day))

		timezone := query.Get("timezone")
		if timezone == "" {
			timezone = app.Location.String()
		}

		data := traits.SpotCardData{
			Name:          spot.Name,
			Lat:           spot.Lat,
			Lon:           spot.Lon,
			Activity:      activity,
			Label:         label,
			Temperature:   reading.Current.Temperature,
			WindSpeed:     reading.Current.WindSpeed,
			Precipitation: reading.Current.Precipitation,
			WaveHeight:    reading.Current.WaveHeight,
			UpdatedAt:     reading.FetchedAt,
			Timezone:      timezone,
		}

		if query.Get("theme") == "dark" {
			traits.WriteHTMLResponse(w, traits.RenderHTMLCardDark(data))
			return
		}
		traits.WriteHTMLResponse(w, traits.RenderHTMLCard(data))
	}
}
