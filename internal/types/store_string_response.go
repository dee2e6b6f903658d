package types

import (
	"context"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

// StoreStringResponse store string response
//
// swagger:model storeStringResponse
type StoreStringResponse struct {

	// ID of the stored record
	// Required: true
	ID *int64 `json:"id"`

	// message
	// Example: String stored successfully
	// Required: true
	Message *string `json:"message"`
}

// Validate validates this store string response
func (m *StoreStringResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("id", "body", m.ID); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("message", "body", m.Message); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// ContextValidate validates this store string response based on context it is used
func (m *StoreStringResponse) ContextValidate(ctx context.Context, formats strfmt.Registry) error {
	return nil
}

// MarshalBinary interface implementation
func (m *StoreStringResponse) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return swag.WriteJSON(m)
}

// UnmarshalBinary interface implementation
func (m *StoreStringResponse) UnmarshalBinary(b []byte) error {
	var res StoreStringResponse
	if err := swag.ReadJSON(b, &res); err != nil {
		return err
	}
	*m = res
	return nil
}
