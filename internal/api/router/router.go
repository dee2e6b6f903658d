package router

import (
	"fmt"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"github/chapool/go-transfer/internal/api"
	"github/chapool/go-transfer/internal/api/handlers"
	"github/chapool/go-transfer/internal/api/middleware"
)

func Init(s *api.Server) error {
	s.Echo = echo.New()

	s.Echo.Debug = s.Config.Echo.Debug
	s.Echo.HideBanner = true

	s.Echo.HTTPErrorHandler = HTTPErrorHandlerWithConfig(HTTPErrorHandlerConfig{
		HideInternalServerErrorDetails: s.Config.Echo.HideInternalServerErrorDetails,
	})

	// ---
	// General middleware
	if s.Config.Echo.EnableTrailingSlashMiddleware {
		s.Echo.Pre(echoMiddleware.RemoveTrailingSlash())
	} else {
		log.Warn().Msg("Disabling trailing slash middleware due to environment config")
	}

	if s.Config.Echo.EnableRecoverMiddleware {
		s.Echo.Use(echoMiddleware.RecoverWithConfig(echoMiddleware.RecoverConfig{
			LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
				log.Error().Err(err).Bytes("stack", stack).Msg("Recovered from panic")
				return err
			},
		}))
	} else {
		log.Warn().Msg("Disabling recover middleware due to environment config")
	}

	if s.Config.Echo.EnableSecureMiddleware {
		s.Echo.Use(echoMiddleware.SecureWithConfig(echoMiddleware.DefaultSecureConfig))
	} else {
		log.Warn().Msg("Disabling secure middleware due to environment config")
	}

	if s.Config.Echo.EnableRequestIDMiddleware {
		s.Echo.Use(middleware.RequestID())
	} else {
		log.Warn().Msg("Disabling request ID middleware due to environment config")
	}

	if s.Config.Echo.EnableLoggerMiddleware {
		s.Echo.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
			Level:            s.Config.Logger.RequestLevel,
			LogRequestHeader: s.Config.Logger.LogRequestHeader,
			LogRequestQuery:  s.Config.Logger.LogRequestQuery,
			LogCaller:        s.Config.Logger.LogCaller,
		}))
	} else {
		log.Warn().Msg("Disabling logger middleware due to environment config")
	}

	if s.Config.Echo.EnableCORSMiddleware {
		s.Echo.Use(echoMiddleware.CORS())
	} else {
		log.Warn().Msg("Disabling CORS middleware due to environment config")
	}

	if s.Config.Echo.EnableBodyLimitMiddleware {
		s.Echo.Use(echoMiddleware.BodyLimit(s.Config.Echo.BodyLimit))
	} else {
		log.Warn().Msg("Disabling body limit middleware due to environment config")
	}

	if s.Config.Metrics.Enabled {
		mw, err := echoprometheus.MiddlewareConfig{
			Namespace:  "transfer",
			Registerer: s.Metrics.Registry(),
			Skipper: func(c echo.Context) bool {
				return c.Path() == "/metrics"
			},
		}.ToMiddleware()
		if err != nil {
			return fmt.Errorf("failed to create metrics middleware: %w", err)
		}

		s.Echo.Use(mw)
	}

	s.Router = &api.Router{
		Routes: nil, // will be populated by handlers.AttachAllRoutes(s)

		// Unsecured base group available at /**
		Root: s.Echo.Group(""),

		// Management endpoints, uncacheable, available at /-/**
		// Probes are public, everything else requires the management secret.
		Management: s.Echo.Group("/-", echoMiddleware.KeyAuthWithConfig(echoMiddleware.KeyAuthConfig{
			KeyLookup: "query:mgmt-secret",
			Validator: func(key string, _ echo.Context) (bool, error) {
				return key == s.Config.Management.Secret, nil
			},
			Skipper: func(c echo.Context) bool {
				switch c.Path() {
				case "/-/ready", "/-/healthy":
					return true
				}
				return false
			},
		}), noCache()),

		// API v1 wallet endpoints, available at /api/v1/wallet/**
		APIV1Wallet: s.Echo.Group("/api/v1/wallet", noCache()),
	}

	handlers.AttachAllRoutes(s)

	return nil
}

func noCache() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("Cache-Control", "no-cache, no-store, must-revalidate")
			h.Set("Pragma", "no-cache")
			h.Set("Expires", "0")

			return next(c)
		}
	}
}
