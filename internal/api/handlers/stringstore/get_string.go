package stringstore

import (
	"errors"
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/go-transfer/internal/api"
	"github/chapool/go-transfer/internal/api/httperrors"
	"github/chapool/go-transfer/internal/store"
	"github/chapool/go-transfer/internal/types"
	"github/chapool/go-transfer/internal/util"
)

func GetStringRoute(s *api.Server) *echo.Route {
	return s.Router.Root.GET("/get_string/:id", getStringHandler(s))
}

func getStringHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var params types.GetStringRouteParams
		if err := util.BindAndValidatePathParams(c, &params); err != nil {
			return err
		}

		rec, err := s.Store.Get(ctx, params.ID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return httperrors.ErrNotFoundString
			}

			util.LogFromContext(ctx).Error().Err(err).Int64("id", params.ID).Msg("Failed to get string")
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.StringRecord{
			ID:    swag.Int64(rec.ID),
			Value: swag.String(rec.Value),
		})
	}
}
