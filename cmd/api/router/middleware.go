package router

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/shadowbane/nautic/pkg/metrics"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func setCORSHeaders(h http.Header, origin string) {
	h.Set("Access-Control-Allow-Origin", origin)
	h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type")
}

// wrap adds CORS headers and records the request under the route pattern
func wrap(m *metrics.Metrics, origin, method, route string, next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		start := time.Now()
		setCORSHeaders(w.Header(), origin)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r, p)

		m.ObserveRequest(method, route, rec.status, time.Since(start))
	}
}

// preflight answers OPTIONS requests for every registered path
func preflight(origin string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		setCORSHeaders(w.Header(), origin)
		w.WriteHeader(http.StatusNoContent)
	})
}
