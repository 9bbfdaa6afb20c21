package controllers

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/shadowbane/nautic/pkg/application"
	traits "github.com/shadowbane/nautic/pkg/traits/controller-traits"
	"go.uber.org/zap"
)

// Sync runs the forecast fetch-and-store job on demand
func Sync(app *application.Application) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		count, err := app.ForecastFetcher.FetchAndStore(r.Context())
		if err != nil {
			zap.S().Errorf("Manual forecast sync failed: %v", err)
			traits.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}

		traits.WriteResponse(w, map[string]interface{}{
			"message": "Sync completed",
			"count":   count,
		})
	}
}
