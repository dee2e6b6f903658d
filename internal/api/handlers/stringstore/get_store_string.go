package stringstore

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/go-transfer/internal/api"
	"github/chapool/go-transfer/internal/api/httperrors"
	"github/chapool/go-transfer/internal/types"
	"github/chapool/go-transfer/internal/util"
)

const messageStored = "String stored successfully"

func GetStoreStringRoute(s *api.Server) *echo.Route {
	return s.Router.Root.GET("/store_string", getStoreStringHandler(s))
}

func getStoreStringHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if c.QueryParam("value") == "" {
			return httperrors.ErrBadRequestMissingValue
		}

		var params types.GetStoreStringParams
		if err := util.BindAndValidateQueryParams(c, &params); err != nil {
			return err
		}

		rec, err := s.Store.Create(ctx, params.Value)
		if err != nil {
			util.LogFromContext(ctx).Error().Err(err).Msg("Failed to store string")
			return err
		}

		s.Metrics.IncStoredStrings()

		return util.ValidateAndReturn(c, http.StatusCreated, &types.StoreStringResponse{
			ID:      swag.Int64(rec.ID),
			Message: swag.String(messageStored),
		})
	}
}
