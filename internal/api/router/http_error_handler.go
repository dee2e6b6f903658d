package router

import (
	"errors"
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/go-transfer/internal/api/httperrors"
	"github/chapool/go-transfer/internal/util"
)

type HTTPErrorHandlerConfig struct {
	HideInternalServerErrorDetails bool
}

var DefaultHTTPErrorHandlerConfig = HTTPErrorHandlerConfig{
	HideInternalServerErrorDetails: true,
}

func HTTPErrorHandler() echo.HTTPErrorHandler {
	return HTTPErrorHandlerWithConfig(DefaultHTTPErrorHandlerConfig)
}

// HTTPErrorHandlerWithConfig renders errors returned by handlers as public
// HTTP errors. Wallet errors that reach it unconverted are mapped by kind.
func HTTPErrorHandlerWithConfig(config HTTPErrorHandlerConfig) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var code int64
		var resultErr error

		if walletErr := httperrors.FromWalletError(err); walletErr != nil {
			err = walletErr
		}

		var httpError *httperrors.HTTPError
		var httpValidationError *httperrors.HTTPValidationError
		var echoHTTPError *echo.HTTPError

		switch {
		case errors.As(err, &httpError):
			code = *httpError.Code
			resultErr = httpError

			if code == http.StatusInternalServerError && config.HideInternalServerErrorDetails {
				if httpError.Internal == nil {
					//nolint:errorlint
					httpError.Internal = errors.New(httpError.Error())
				}

				httpError.Title = swag.String(http.StatusText(http.StatusInternalServerError))
				httpError.Detail = ""
			}
		case errors.As(err, &httpValidationError):
			code = *httpValidationError.Code
			resultErr = httpValidationError
		case errors.As(err, &echoHTTPError):
			code = int64(echoHTTPError.Code)

			if code == http.StatusInternalServerError && config.HideInternalServerErrorDetails {
				resultErr = httperrors.NewFromEcho(echo.ErrInternalServerError)
			} else {
				resultErr = httperrors.NewFromEcho(echoHTTPError)
			}
		default:
			code = http.StatusInternalServerError

			if config.HideInternalServerErrorDetails {
				resultErr = httperrors.NewFromEcho(echo.ErrInternalServerError)
			} else {
				resultErr = &echo.HTTPError{
					Code:     http.StatusInternalServerError,
					Message:  err.Error(),
					Internal: err,
				}
			}
		}

		if code >= http.StatusInternalServerError {
			util.LogFromEchoContext(c).Error().Err(err).Int64("code", code).Msg("Request failed")
		}

		if !c.Response().Committed {
			if c.Request().Method == http.MethodHead {
				err = c.NoContent(int(code))
			} else {
				err = c.JSON(int(code), resultErr)
			}

			if err != nil {
				util.LogFromEchoContext(c).Warn().AnErr("http_err", err).Msg("Failed to handle HTTP error")
			}
		}
	}
}
