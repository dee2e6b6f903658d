package handlers

import (
	"github.com/labstack/echo/v4"
	"github/chapool/go-transfer/internal/api"
	"github/chapool/go-transfer/internal/api/handlers/common"
	"github/chapool/go-transfer/internal/api/handlers/stringstore"
	"github/chapool/go-transfer/internal/api/handlers/wallet"
)

func AttachAllRoutes(s *api.Server) {
	// attach our routes
	s.Router.Routes = []*echo.Route{
		common.GetHealthyRoute(s),
		common.GetReadyRoute(s),
		stringstore.GetAllStringsRoute(s),
		stringstore.GetStoreStringRoute(s),
		stringstore.GetStringRoute(s),
		wallet.PostAddressRoute(s),
		wallet.PostTransferCoinRoute(s),
		wallet.PostTransferRoute(s),
	}

	if s.Config.Metrics.Enabled {
		s.Router.Routes = append(s.Router.Routes, common.GetMetricsRoute(s))
	}
}
