package stringstore

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/go-transfer/internal/api"
	"github/chapool/go-transfer/internal/types"
	"github/chapool/go-transfer/internal/util"
)

func GetAllStringsRoute(s *api.Server) *echo.Route {
	return s.Router.Root.GET("/get_all_strings", getAllStringsHandler(s))
}

func getAllStringsHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var params types.GetAllStringsParams
		if err := util.BindAndValidateQueryParams(c, &params); err != nil {
			return err
		}

		recs, err := s.Store.List(ctx, params.Search)
		if err != nil {
			util.LogFromContext(ctx).Error().Err(err).Msg("Failed to list strings")
			return err
		}

		res := &types.StringList{Strings: make([]*types.StringRecord, 0, len(recs))}
		for _, rec := range recs {
			res.Strings = append(res.Strings, &types.StringRecord{
				ID:    swag.Int64(rec.ID),
				Value: swag.String(rec.Value),
			})
		}

		return util.ValidateAndReturn(c, http.StatusOK, res)
	}
}
