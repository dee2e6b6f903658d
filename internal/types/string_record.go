package types

import (
	"context"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

// StringRecord string record
//
// swagger:model stringRecord
type StringRecord struct {

	// ID of the record
	// Example: 1
	// Required: true
	ID *int64 `json:"id"`

	// Stored value
	// Required: true
	// Max Length: 255
	Value *string `json:"value"`
}

// Validate validates this string record
func (m *StringRecord) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.Required("id", "body", m.ID); err != nil {
		res = append(res, err)
	}

	if err := m.validateValue(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *StringRecord) validateValue(formats strfmt.Registry) error {

	if err := validate.Required("value", "body", m.Value); err != nil {
		return err
	}

	if err := validate.MaxLength("value", "body", *m.Value, 255); err != nil {
		return err
	}

	return nil
}

// ContextValidate validates this string record based on context it is used
func (m *StringRecord) ContextValidate(ctx context.Context, formats strfmt.Registry) error {
	return nil
}

// MarshalBinary interface implementation
func (m *StringRecord) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return swag.WriteJSON(m)
}

// UnmarshalBinary interface implementation
func (m *StringRecord) UnmarshalBinary(b []byte) error {
	var res StringRecord
	if err := swag.ReadJSON(b, &res); err != nil {
		return err
	}
	*m = res
	return nil
}
