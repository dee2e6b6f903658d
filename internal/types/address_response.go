package types

import (
	"context"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

// AddressResponse address response
//
// swagger:model addressResponse
type AddressResponse struct {

	// Checksummed address of the derived account
	// Example: 0x9858EfFD232B4033E47d90003D41EC34EcaEda94
	// Required: true
	Address *string `json:"address"`

	// HD path the account was derived at
	// Example: m/44'/60'/0'/0/0
	// Required: true
	DerivationPath *string `json:"derivation_path"`

	// BIP-32 serialized public key of the account
	ExtendedPublicKey string `json:"extended_public_key,omitempty"`
}

// Validate validates this address response
func (m *AddressResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("address", "body", m.Address); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("derivation_path", "body", m.DerivationPath); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// ContextValidate validates this address response based on context it is used
func (m *AddressResponse) ContextValidate(ctx context.Context, formats strfmt.Registry) error {
	return nil
}

// MarshalBinary interface implementation
func (m *AddressResponse) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return swag.WriteJSON(m)
}

// UnmarshalBinary interface implementation
func (m *AddressResponse) UnmarshalBinary(b []byte) error {
	var res AddressResponse
	if err := swag.ReadJSON(b, &res); err != nil {
		return err
	}
	*m = res
	return nil
}
