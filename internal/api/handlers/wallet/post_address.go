package wallet

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/go-transfer/internal/api"
	"github/chapool/go-transfer/internal/api/httperrors"
	"github/chapool/go-transfer/internal/types"
	"github/chapool/go-transfer/internal/util"
	"github/chapool/go-transfer/internal/wallet/address"
	"github/chapool/go-transfer/internal/wallet/walleterr"
)

func PostAddressRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.POST("/address", postAddressHandler(s))
}

func postAddressHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body types.PostAddressPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		result, err := s.Account.DeriveAddress(ctx, swag.StringValue(body.SecretKey), body.Passphrase)
		if err != nil {
			kind := walleterr.KindOf(err)
			s.Metrics.ObserveDerivation(string(kind))

			util.LogFromContext(ctx).Debug().Str("kind", string(kind)).Msg("Failed to derive address")

			if httpErr := httperrors.FromWalletError(err); httpErr != nil {
				return httpErr
			}

			return err
		}

		s.Metrics.ObserveDerivation("")

		return util.ValidateAndReturn(c, http.StatusOK, &types.AddressResponse{
			Address:           swag.String(address.Checksum(result.Address)),
			DerivationPath:    swag.String(result.Path.String()),
			ExtendedPublicKey: result.ExtendedPublicKey,
		})
	}
}
