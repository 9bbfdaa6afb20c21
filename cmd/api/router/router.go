package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/shadowbane/nautic/cmd/api/controllers"
	"github.com/shadowbane/nautic/cmd/api/controllers/cards"
	"github.com/shadowbane/nautic/cmd/api/controllers/conditions"
	"github.com/shadowbane/nautic/cmd/api/controllers/forecast"
	"github.com/shadowbane/nautic/cmd/api/controllers/spots"
	"github.com/shadowbane/nautic/cmd/api/controllers/variables"
	"github.com/shadowbane/nautic/pkg/application"
)

func Api(app *application.Application) *httprouter.Router {
	mux := httprouter.New()
	origin := app.Cfg.GetCORSOrigin()

	handle := func(method, path string, h httprouter.Handle) {
		mux.Handle(method, path, wrap(app.Metrics, origin, method, path, h))
	}

	handle(http.MethodGet, "/api/health", controllers.Health())

	// Spots and stored variables
	handle(http.MethodGet, "/api/spots", spots.Index(app))
	handle(http.MethodGet, "/api/spots/weather_average_mon", spots.WeatherAverage(app))
	handle(http.MethodPost, "/api/variables", variables.Store(app))

	// Scored conditions
	handle(http.MethodGet, "/api/conditions", conditions.Index(app))
	handle(http.MethodGet, "/api/forecast/:spotId", forecast.Show(app))
	handle(http.MethodGet, "/api/cards/:spotId", cards.Show(app))
	handle(http.MethodPost, "/api/sync", controllers.Sync(app))

	mux.Handler(http.MethodGet, "/metrics", app.Metrics.Handler())

	mux.HandleOPTIONS = true
	mux.GlobalOPTIONS = preflight(origin)

	return mux
}
