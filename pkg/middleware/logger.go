package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type LoggerOpts func(*loggerOptions)

type loggerOptions struct {
	logger  *slog.Logger
	skipper middleware.Skipper
}

// WithSkipper excludes matching requests from the log, e.g. health probes.
func WithSkipper(skipper middleware.Skipper) LoggerOpts {
	return func(o *loggerOptions) {
		o.skipper = skipper
	}
}

// WithLogger sends request lines to l instead of slog.Default().
func WithLogger(l *slog.Logger) LoggerOpts {
	return func(o *loggerOptions) {
		o.logger = l
	}
}

// Logger logs one line per request: 5xx and handler errors at ERROR, 4xx at WARN,
// everything else at INFO.
func Logger(opts ...LoggerOpts) echo.MiddlewareFunc {
	o := loggerOptions{skipper: middleware.DefaultSkipper}
	for _, opt := range opts {
		opt(&o)
	}

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper:      o.skipper,
		LogStatus:    true,
		LogLatency:   true,
		LogMethod:    true,
		LogURI:       true,
		LogRoutePath: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger := o.logger
			if logger == nil {
				logger = slog.Default()
			}

			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.String("route", v.RoutePath),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			level := levelFor(v.Status)
			if v.Error != nil {
				level = slog.LevelError
				attrs = append(attrs, slog.String("err", v.Error.Error()))
			}

			logger.LogAttrs(c.Request().Context(), level, "REQUEST", attrs...)
			return nil
		},
	})
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
