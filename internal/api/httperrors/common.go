package httperrors

import (
	"net/http"

	"github/chapool/go-transfer/internal/types"
)

var (
	ErrBadRequestMissingValue = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, "Missing value parameter")
	ErrNotFoundString         = NewHTTPError(http.StatusNotFound, types.PublicHTTPErrorTypeSTRINGNOTFOUND, "String not found")
)
