package server

import (
	"context"
	"time"

	"github.com/go-kit/kit/endpoint"
	"github.com/go-kit/log"
	"github.com/san-kum/normdist/internal/config"
	"github.com/san-kum/normdist/internal/view"
)

type renderRequest struct {
	Format string
	Mean   string
	Sigma  string
	Theme  string
}

type renderResponse struct {
	Frame *view.Frame
	Theme string
}

// MakeRenderEndpoint builds a fresh view per request and returns its frame.
func MakeRenderEndpoint(cfg *config.Config) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(renderRequest)

		v, err := view.New(cfg)
		if err != nil {
			return nil, err
		}
		if req.Mean != "" {
			if err := v.SetMeanInput(req.Mean); err != nil {
				return nil, err
			}
		}
		if req.Sigma != "" {
			if err := v.SetStdDevInput(req.Sigma); err != nil {
				return nil, err
			}
		}

		theme := req.Theme
		if theme == "" {
			theme = cfg.Theme
		}
		return renderResponse{Frame: v.Frame(), Theme: theme}, nil
	}
}

// LoggingMiddleware logs every render with its parameters and duration.
func LoggingMiddleware(logger log.Logger) endpoint.Middleware {
	return func(next endpoint.Endpoint) endpoint.Endpoint {
		return func(ctx context.Context, request interface{}) (response interface{}, err error) {
			defer func(begin time.Time) {
				req, _ := request.(renderRequest)
				keyvals := []interface{}{
					"format", req.Format,
					"mean", req.Mean,
					"sigma", req.Sigma,
					"took", time.Since(begin),
					"err", err,
				}
				if resp, ok := response.(renderResponse); ok && resp.Frame != nil {
					keyvals = append(keyvals, "effective_mean", resp.Frame.MeanReadout, "effective_sigma", resp.Frame.StdDevReadout)
				}
				logger.Log(keyvals...)
			}(time.Now())
			return next(ctx, request)
		}
	}
}

// InstrumentingMiddleware records render counts and latency per format.
func InstrumentingMiddleware(m *Metrics) endpoint.Middleware {
	return func(next endpoint.Endpoint) endpoint.Endpoint {
		return func(ctx context.Context, request interface{}) (interface{}, error) {
			req, _ := request.(renderRequest)
			begin := time.Now()
			response, err := next(ctx, request)
			m.observe(req.Format, err, time.Since(begin))
			return response, err
		}
	}
}
