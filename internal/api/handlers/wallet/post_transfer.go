package wallet

import (
	"net/http"
	"time"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/go-transfer/internal/api"
	"github/chapool/go-transfer/internal/api/httperrors"
	"github/chapool/go-transfer/internal/metrics"
	"github/chapool/go-transfer/internal/types"
	"github/chapool/go-transfer/internal/util"
	"github/chapool/go-transfer/internal/wallet/account"
	"github/chapool/go-transfer/internal/wallet/address"
	"github/chapool/go-transfer/internal/wallet/walleterr"
)

func PostTransferRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.POST("/transfer", postTransferHandler(s))
}

// PostTransferCoinRoute serves the transfer under its legacy path.
func PostTransferCoinRoute(s *api.Server) *echo.Route {
	return s.Router.Root.POST("/transfer_coin", postTransferHandler(s))
}

func postTransferHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostTransferPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		start := time.Now()

		result, err := s.Account.Transfer(ctx, &account.TransferRequest{
			Phrase:     swag.StringValue(body.SecretKey),
			Passphrase: body.Passphrase,
			Receiver:   swag.StringValue(body.ReceiverAddress),
		})
		if err != nil {
			kind := walleterr.KindOf(err)
			s.Metrics.ObserveTransfer(metrics.OutcomeError, string(kind), time.Since(start))

			log.Debug().Str("kind", string(kind)).Msg("Failed to transfer")

			if httpErr := httperrors.FromWalletError(err); httpErr != nil {
				return httpErr
			}

			return err
		}

		outcome := metrics.OutcomeSigned
		if result.Broadcast {
			outcome = metrics.OutcomeBroadcast
		}
		s.Metrics.ObserveTransfer(outcome, "", time.Since(start))

		return util.ValidateAndReturn(c, http.StatusOK, &types.TransferResponse{
			Message:        swag.String(result.Message),
			FromAddress:    swag.String(address.Checksum(result.From)),
			Broadcast:      swag.Bool(result.Broadcast),
			TxHash:         result.TxHash,
			RawTransaction: result.RawTransaction,
		})
	}
}
