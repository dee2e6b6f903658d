package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

// GetStoreStringParams contains all the bound params for the store string operation
//
// swagger:parameters getStoreString
type GetStoreStringParams struct {

	// Value to store
	// Required: true
	// In: query
	// Max Length: 255
	// Min Length: 1
	Value string `query:"value"`
}

// Validate validates this get store string params
func (o *GetStoreStringParams) Validate(formats strfmt.Registry) error {
	var res []error

	if err := o.validateValue(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (o *GetStoreStringParams) validateValue(formats strfmt.Registry) error {

	if err := validate.RequiredString("value", "query", o.Value); err != nil {
		return err
	}

	if err := validate.MaxLength("value", "query", o.Value, 255); err != nil {
		return err
	}

	return nil
}

// GetAllStringsParams contains all the bound params for the get all strings operation
//
// swagger:parameters getAllStrings
type GetAllStringsParams struct {

	// Case insensitive search terms, separated by spaces
	// In: query
	// Max Length: 255
	Search string `query:"search"`
}

// Validate validates this get all strings params
func (o *GetAllStringsParams) Validate(formats strfmt.Registry) error {
	if swag.IsZero(o.Search) {
		return nil
	}

	if err := validate.MaxLength("search", "query", o.Search, 255); err != nil {
		return errors.CompositeValidationError(err)
	}

	return nil
}

// GetStringRouteParams contains all the bound params for the get string operation
//
// swagger:parameters getString
type GetStringRouteParams struct {

	// ID of the record
	// In: path
	// Minimum: 1
	ID int64 `param:"id"`
}

// Validate validates this get string route params
func (o *GetStringRouteParams) Validate(formats strfmt.Registry) error {
	var res []error

	if err := validate.MinimumInt("id", "path", o.ID, 1, false); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}
