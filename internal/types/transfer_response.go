package types

import (
	"context"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

// TransferResponse transfer response
//
// swagger:model transferResponse
type TransferResponse struct {

	// Whether the signed transaction was submitted to the network
	// Required: true
	Broadcast *bool `json:"broadcast"`

	// Checksummed sender address
	// Example: 0x9858EfFD232B4033E47d90003D41EC34EcaEda94
	// Required: true
	FromAddress *string `json:"from_address"`

	// Human readable outcome
	// Example: Transaction is successful
	// Required: true
	Message *string `json:"message"`

	// 0x prefixed hex of the signed transaction
	RawTransaction string `json:"raw_transaction,omitempty"`

	// Transaction hash, only present if the transaction was broadcast
	// Pattern: ^0x[0-9a-f]{64}$
	TxHash string `json:"tx_hash,omitempty"`
}

// Validate validates this transfer response
func (m *TransferResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("broadcast", "body", m.Broadcast); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("from_address", "body", m.FromAddress); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("message", "body", m.Message); err != nil {
		res = append(res, err)
	}

	if err := m.validateTxHash(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *TransferResponse) validateTxHash(formats strfmt.Registry) error {
	if swag.IsZero(m.TxHash) { // not required
		return nil
	}

	if err := validate.Pattern("tx_hash", "body", m.TxHash, `^0x[0-9a-f]{64}$`); err != nil {
		return err
	}

	return nil
}

// ContextValidate validates this transfer response based on context it is used
func (m *TransferResponse) ContextValidate(ctx context.Context, formats strfmt.Registry) error {
	return nil
}

// MarshalBinary interface implementation
func (m *TransferResponse) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return swag.WriteJSON(m)
}

// UnmarshalBinary interface implementation
func (m *TransferResponse) UnmarshalBinary(b []byte) error {
	var res TransferResponse
	if err := swag.ReadJSON(b, &res); err != nil {
		return err
	}
	*m = res
	return nil
}
