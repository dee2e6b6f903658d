package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github/chapool/go-transfer/internal/util"
)

// RequestID assigns every request a UUID (or keeps the one the client sent in
// X-Request-ID) and stores it in the request context.
func RequestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
		RequestIDHandler: func(c echo.Context, id string) {
			req := c.Request()
			c.SetRequest(req.WithContext(context.WithValue(req.Context(), util.CTXKeyRequestID, id)))
		},
	})
}
