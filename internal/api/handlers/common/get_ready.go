package common

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/go-transfer/internal/api"
	"github/chapool/go-transfer/internal/util"
)

const statusNotReady = 521

func GetReadyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/ready", getReadyHandler(s))
}

// Readiness checks the database only, the network is covered by /-/healthy.
func getReadyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.Ready() {
			return c.String(statusNotReady, "Not ready.")
		}

		if errs := ProbeReadiness(c.Request().Context(), s.DB, s.Config.Management.ReadinessTimeout); len(errs) > 0 {
			util.LogFromEchoContext(c).Warn().Strs("errs", errs).Msg("Readiness probe failed")
			return c.String(statusNotReady, "Not ready.")
		}

		return c.String(http.StatusOK, "Ready.")
	}
}
