package types

import (
	"context"
	"encoding/json"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// PublicHTTPErrorType Type of error returned, should be used for client-side error handling.
//
// swagger:model publicHttpErrorType
type PublicHTTPErrorType string

func NewPublicHTTPErrorType(value PublicHTTPErrorType) *PublicHTTPErrorType {
	return &value
}

// Pointer returns a pointer to a freshly-allocated PublicHTTPErrorType.
func (m PublicHTTPErrorType) Pointer() *PublicHTTPErrorType {
	return &m
}

const (

	// PublicHTTPErrorTypeGeneric captures enum value "generic"
	PublicHTTPErrorTypeGeneric PublicHTTPErrorType = "generic"

	// PublicHTTPErrorTypeINVALIDPHRASE captures enum value "INVALID_PHRASE"
	PublicHTTPErrorTypeINVALIDPHRASE PublicHTTPErrorType = "INVALID_PHRASE"

	// PublicHTTPErrorTypeCHECKSUMMISMATCH captures enum value "CHECKSUM_MISMATCH"
	PublicHTTPErrorTypeCHECKSUMMISMATCH PublicHTTPErrorType = "CHECKSUM_MISMATCH"

	// PublicHTTPErrorTypeINVALIDCHILDDERIVATION captures enum value "INVALID_CHILD_DERIVATION"
	PublicHTTPErrorTypeINVALIDCHILDDERIVATION PublicHTTPErrorType = "INVALID_CHILD_DERIVATION"

	// PublicHTTPErrorTypeINVALIDADDRESS captures enum value "INVALID_ADDRESS"
	PublicHTTPErrorTypeINVALIDADDRESS PublicHTTPErrorType = "INVALID_ADDRESS"

	// PublicHTTPErrorTypeINVALIDTRANSACTIONREQUEST captures enum value "INVALID_TRANSACTION_REQUEST"
	PublicHTTPErrorTypeINVALIDTRANSACTIONREQUEST PublicHTTPErrorType = "INVALID_TRANSACTION_REQUEST"

	// PublicHTTPErrorTypeSIGNINGFAILURE captures enum value "SIGNING_FAILURE"
	PublicHTTPErrorTypeSIGNINGFAILURE PublicHTTPErrorType = "SIGNING_FAILURE"

	// PublicHTTPErrorTypeNETWORKUNAVAILABLE captures enum value "NETWORK_UNAVAILABLE"
	PublicHTTPErrorTypeNETWORKUNAVAILABLE PublicHTTPErrorType = "NETWORK_UNAVAILABLE"

	// PublicHTTPErrorTypeSTRINGNOTFOUND captures enum value "STRING_NOT_FOUND"
	PublicHTTPErrorTypeSTRINGNOTFOUND PublicHTTPErrorType = "STRING_NOT_FOUND"
)

// for schema
var publicHttpErrorTypeEnum []any //nolint:revive,stylecheck

func init() {
	var res []PublicHTTPErrorType
	if err := json.Unmarshal([]byte(`["generic","INVALID_PHRASE","CHECKSUM_MISMATCH","INVALID_CHILD_DERIVATION","INVALID_ADDRESS","INVALID_TRANSACTION_REQUEST","SIGNING_FAILURE","NETWORK_UNAVAILABLE","STRING_NOT_FOUND"]`), &res); err != nil {
		panic(err)
	}
	for _, v := range res {
		publicHttpErrorTypeEnum = append(publicHttpErrorTypeEnum, v)
	}
}

func (m PublicHTTPErrorType) validatePublicHTTPErrorTypeEnum(path, location string, value PublicHTTPErrorType) error {
	if err := validate.EnumCase(path, location, value, publicHttpErrorTypeEnum, true); err != nil {
		return err
	}
	return nil
}

// Validate validates this public Http error type
func (m PublicHTTPErrorType) Validate(formats strfmt.Registry) error {
	var res []error

	// value enum
	if err := m.validatePublicHTTPErrorTypeEnum("", "body", m); err != nil {
		return err
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// ContextValidate validates this public Http error type based on context it is used
func (m PublicHTTPErrorType) ContextValidate(ctx context.Context, formats strfmt.Registry) error {
	return nil
}
