// Package validation provides input validation for Anvil request payloads.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Struct tag validation is
// what the payload types use.
//
// # Struct Tag Validation
//
//	type FillPDF struct {
//	    Data map[string]any `json:"data" validate:"required"`
//	}
//	err := validation.Validate(p)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("signerEid", signerEid)
//	err := v.Validate()
package validation
