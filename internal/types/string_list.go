package types

import (
	"context"
	"strconv"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

// StringList string list
//
// swagger:model stringList
type StringList struct {

	// strings
	// Required: true
	Strings []*StringRecord `json:"strings"`
}

// Validate validates this string list
func (m *StringList) Validate(formats strfmt.Registry) error {
	var res []error

	if err := m.validateStrings(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *StringList) validateStrings(formats strfmt.Registry) error {

	if err := validate.Required("strings", "body", m.Strings); err != nil {
		return err
	}

	for i := 0; i < len(m.Strings); i++ {
		if swag.IsZero(m.Strings[i]) { // not required
			continue
		}

		if m.Strings[i] != nil {
			if err := m.Strings[i].Validate(formats); err != nil {
				if ve, ok := err.(*errors.Validation); ok {
					return ve.ValidateName("strings" + "." + strconv.Itoa(i))
				} else if ce, ok := err.(*errors.CompositeError); ok {
					return ce.ValidateName("strings" + "." + strconv.Itoa(i))
				}
				return err
			}
		}

	}

	return nil
}

// ContextValidate validates this string list based on context it is used
func (m *StringList) ContextValidate(ctx context.Context, formats strfmt.Registry) error {
	return nil
}

// MarshalBinary interface implementation
func (m *StringList) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return swag.WriteJSON(m)
}

// UnmarshalBinary interface implementation
func (m *StringList) UnmarshalBinary(b []byte) error {
	var res StringList
	if err := swag.ReadJSON(b, &res); err != nil {
		return err
	}
	*m = res
	return nil
}
