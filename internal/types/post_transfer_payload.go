package types

import (
	"context"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

// PostTransferPayload post transfer payload
//
// swagger:model postTransferPayload
type PostTransferPayload struct {

	// Optional BIP-39 passphrase
	// Max Length: 500
	Passphrase string `json:"passphrase,omitempty"`

	// Receiver, EIP-55 checksummed or single-case hex
	// Example: 0x9858EfFD232B4033E47d90003D41EC34EcaEda94
	// Required: true
	ReceiverAddress *string `json:"receiver_address"`

	// BIP-39 seed phrase of the sending account
	// Required: true
	// Max Length: 1000
	// Min Length: 1
	SecretKey *string `json:"secret_key"`
}

// Validate validates this post transfer payload
func (m *PostTransferPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := m.validatePassphrase(formats); err != nil {
		res = append(res, err)
	}

	if err := m.validateReceiverAddress(formats); err != nil {
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

func (m *PostTransferPayload) validatePassphrase(formats strfmt.Registry) error {
	if swag.IsZero(m.Passphrase) { // not required
		return nil
	}

	if err := validate.MaxLength("passphrase", "body", m.Passphrase, 500); err != nil {
		return err
	}

	return nil
}

func (m *PostTransferPayload) validateReceiverAddress(formats strfmt.Registry) error {

	if err := validate.Required("receiver_address", "body", m.ReceiverAddress); err != nil {
		return err
	}

	return nil
}

func (m *PostTransferPayload) validateSecretKey(formats strfmt.Registry) error {

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

// ContextValidate validates this post transfer payload based on context it is used
func (m *PostTransferPayload) ContextValidate(ctx context.Context, formats strfmt.Registry) error {
	return nil
}

// MarshalBinary interface implementation
func (m *PostTransferPayload) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return swag.WriteJSON(m)
}

// UnmarshalBinary interface implementation
func (m *PostTransferPayload) UnmarshalBinary(b []byte) error {
	var res PostTransferPayload
	if err := swag.ReadJSON(b, &res); err != nil {
		return err
	}
	*m = res
	return nil
}
