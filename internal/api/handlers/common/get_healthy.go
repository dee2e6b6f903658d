package common

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github/chapool/go-transfer/internal/api"
)

func GetHealthyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/healthy", getHealthyHandler(s))
}

func getHealthyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.Ready() {
			return c.String(statusNotReady, "Not ready.")
		}

		errs := ProbeLiveness(c.Request().Context(), s.DB, s.Network, s.Config.Management.LivenessTimeout)
		if len(errs) > 0 {
			return c.String(http.StatusServiceUnavailable, strings.Join(errs, "\n"))
		}

		return c.String(http.StatusOK, "Healthy.")
	}
}
