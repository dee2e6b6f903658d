package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github/chapool/go-transfer/internal/util"
)

// LoggerConfig configures the request logger. Bodies are never logged.
type LoggerConfig struct {
	Skipper          middleware.Skipper
	Level            zerolog.Level
	LogRequestHeader bool
	LogRequestQuery  bool
	LogCaller        bool
}

var DefaultLoggerConfig = LoggerConfig{
	Skipper: middleware.DefaultSkipper,
	Level:   zerolog.DebugLevel,
}

// sensitive headers are replaced before logging
var redactedHeaders = map[string]struct{}{
	echo.HeaderAuthorization: {},
	echo.HeaderCookie:        {},
	echo.HeaderSetCookie:     {},
}

func Logger() echo.MiddlewareFunc {
	return LoggerWithConfig(DefaultLoggerConfig)
}

// LoggerWithConfig attaches a request scoped zerolog logger carrying the
// request id to the request context and logs every finished request.
func LoggerWithConfig(config LoggerConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = DefaultLoggerConfig.Skipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			req := c.Request()
			res := c.Response()

			id, idErr := util.RequestIDFromContext(req.Context())
			if idErr != nil {
				id = req.Header.Get(echo.HeaderXRequestID)
				if id == "" {
					id = res.Header().Get(echo.HeaderXRequestID)
				}
			}

			lctx := log.With().Str("id", id)
			if config.LogCaller {
				lctx = lctx.Caller()
			}
			l := lctx.Logger()

			c.SetRequest(req.WithContext(l.WithContext(req.Context())))
			req = c.Request()

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			took := time.Since(start)

			reqEvent := zerolog.Dict().
				Str("method", req.Method).
				Str("url", req.URL.Path).
				Str("remote_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Int64("content_length", req.ContentLength)

			if config.LogRequestQuery {
				reqEvent = reqEvent.Str("query", req.URL.RawQuery)
			}

			if config.LogRequestHeader {
				reqEvent = reqEvent.Interface("header", redactHeader(req.Header))
			}

			resEvent := zerolog.Dict().
				Int("status", res.Status).
				Int64("size", res.Size)

			level := config.Level
			if res.Status >= http.StatusInternalServerError {
				level = zerolog.ErrorLevel
			}

			l.WithLevel(level).
				Dict("req", reqEvent).
				Dict("res", resEvent).
				Dur("duration_ms", took).
				Err(err).
				Msg("http_request")

			return nil
		}
	}
}

func redactHeader(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if _, ok := redactedHeaders[http.CanonicalHeaderKey(k)]; ok {
			out[k] = []string{"*****REDACTED*****"}
			continue
		}

		out[k] = v
	}

	return out
}
