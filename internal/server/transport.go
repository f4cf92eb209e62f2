package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	"github.com/go-kit/kit/transport"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/go-kit/log"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/san-kum/normdist/internal/config"
	"github.com/san-kum/normdist/internal/export"
)

// NewHandler wires the curve endpoints and /metrics onto a router. reg
// receives the adapter's collectors and is served on /metrics.
func NewHandler(cfg *config.Config, logger log.Logger, reg *prometheus.Registry) http.Handler {
	m := NewMetrics(reg)

	var e endpoint.Endpoint
	e = MakeRenderEndpoint(cfg)
	e = InstrumentingMiddleware(m)(e)
	e = LoggingMiddleware(log.With(logger, "method", "render"))(e)

	opts := []kithttp.ServerOption{
		kithttp.ServerErrorHandler(transport.NewLogErrorHandler(logger)),
		kithttp.ServerErrorEncoder(encodeError),
	}

	r := mux.NewRouter()
	r.Methods("GET").Path("/curve.svg").Handler(kithttp.NewServer(e, decodeRenderRequest("svg"), encodeSVG, opts...))
	r.Methods("GET").Path("/curve.json").Handler(kithttp.NewServer(e, decodeRenderRequest("json"), encodeJSON, opts...))
	r.Methods("GET").Path("/curve.csv").Handler(kithttp.NewServer(e, decodeRenderRequest("csv"), encodeCSV, opts...))
	r.Methods("GET").Path("/metrics").Handler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return r
}

func decodeRenderRequest(format string) kithttp.DecodeRequestFunc {
	return func(_ context.Context, r *http.Request) (interface{}, error) {
		q := r.URL.Query()
		return renderRequest{
			Format: format,
			Mean:   q.Get("mean"),
			Sigma:  firstNonEmpty(q.Get("sigma"), q.Get("sd")),
			Theme:  q.Get("theme"),
		}, nil
	}
}

func encodeSVG(_ context.Context, w http.ResponseWriter, response interface{}) error {
	resp := response.(renderResponse)
	w.Header().Set("Content-Type", "image/svg+xml")
	opts := export.Options{Theme: export.GetTheme(resp.Theme), Standalone: true}
	return export.WriteSVG(w, resp.Frame, opts)
}

func encodeJSON(_ context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	return export.WriteJSON(w, response.(renderResponse).Frame)
}

func encodeCSV(_ context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	return export.WriteCSV(w, response.(renderResponse).Frame.Samples)
}

func encodeError(_ context.Context, err error, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error": err.Error(),
	})
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
