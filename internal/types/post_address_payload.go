package types

import (
	"context"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

// PostAddressPayload post address payload
//
// swagger:model postAddressPayload
type PostAddressPayload struct {

	// Optional BIP-39 passphrase
	// Max Length: 500
	Passphrase string `json:"passphrase,omitempty"`

	// BIP-39 seed phrase
	// Required: true
	// Max Length: 1000
	// Min Length: 1
	SecretKey *string `json:"secret_key"`
}

// Validate validates this post address payload
func (m *PostAddressPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := m.validatePassphrase(formats); err != nil {
		res = append(res, err)
	}

	if err := m.validateSecretKey(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *PostAddressPayload) validatePassphrase(formats strfmt.Registry) error {
	if swag.IsZero(m.Passphrase) { // not required
		return nil
	}

	if err := validate.MaxLength("passphrase", "body", m.Passphrase, 500); err != nil {
		return err
	}

	return nil
}

func (m *PostAddressPayload) validateSecretKey(formats strfmt.Registry) error {

	if err := validate.Required("secret_key", "body", m.SecretKey); err != nil {
		return err
	}

	if err := validate.MinLength("secret_key", "body", *m.SecretKey, 1); err != nil {
		return err
	}

	if err := validate.MaxLength("secret_key", "body", *m.SecretKey, 1000); err != nil {
		return err
	}

	return nil
}

// ContextValidate validates this post address payload based on context it is used
func (m *PostAddressPayload) ContextValidate(ctx context.Context, formats strfmt.Registry) error {
	return nil
}

// MarshalBinary interface implementation
func (m *PostAddressPayload) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return swag.WriteJSON(m)
}

// UnmarshalBinary interface implementation
func (m *PostAddressPayload) UnmarshalBinary(b []byte) error {
	var res PostAddressPayload
	if err := swag.ReadJSON(b, &res); err != nil {
		return err
	}
	*m = res
	return nil
}
