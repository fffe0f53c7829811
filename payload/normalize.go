package payload

import (
	"encoding/json"

	"github.com/levrofin/anvil-go/errors"
)

// validatable lets normalize run each payload kind's own validation.
type validatable interface {
	Validate() error
}

// normalize converts the supported input forms into *T and validates the
// result. Every form goes through the same struct, so serialization is
// identical regardless of the input form.
func normalize[T any, PT interface {
	*T
	validatable
}](argument string, v any) (PT, error) {
	var out PT

	switch x := v.(type) {
	case nil:
		return nil, errors.InvalidInput(argument, "must be a map, JSON string, or typed payload")
	case PT:
		if x == nil {
			return nil, errors.InvalidInput(argument, "must be a map, JSON string, or typed payload")
		}
		out = x
	case T:
		out = PT(&x)
	case map[string]any:
		data, err := json.Marshal(x)
		if err != nil {
			return nil, errors.InvalidInput(argument, "map is not JSON-encodable").WithCause(err)
		}
		out = PT(new(T))
		if err := json.Unmarshal(data, out); err != nil {
			return nil, errors.InvalidInput(argument, "map does not match the payload schema").WithCause(err)
		}
	case string:
		out = PT(new(T))
		if err := json.Unmarshal([]byte(x), out); err != nil {
			return nil, errors.InvalidInput(argument, "must be valid JSON").WithCause(err)
		}
	case []byte:
		out = PT(new(T))
		if err := json.Unmarshal(x, out); err != nil {
			return nil, errors.InvalidInput(argument, "must be valid JSON").WithCause(err)
		}
	case json.RawMessage:
		out = PT(new(T))
		if err := json.Unmarshal(x, out); err != nil {
			return nil, errors.InvalidInput(argument, "must be valid JSON").WithCause(err)
		}
	default:
		return nil, errors.UnsupportedType(argument, v)
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// FillPDFFrom normalizes a map, raw JSON, or typed value into a
// validated *FillPDF.
func FillPDFFrom(v any) (*FillPDF, error) {
	return normalize[FillPDF]("payload", v)
}

// GeneratePDFFrom normalizes a map, raw JSON, or typed value into a
// validated *GeneratePDF.
func GeneratePDFFrom(v any) (*GeneratePDF, error) {
	return normalize[GeneratePDF]("payload", v)
}

// CreateEtchPacketFrom normalizes a map, raw JSON, or typed value into a
// validated *CreateEtchPacket with API defaults applied.
func CreateEtchPacketFrom(v any) (*CreateEtchPacket, error) {
	p, err := normalize[CreateEtchPacket]("payload", v)
	if err != nil {
		return nil, err
	}
	p.ApplyDefaults()
	return p, nil
}

// ForgeSubmitFrom normalizes a map, raw JSON, or typed value into a
// validated *ForgeSubmit with API defaults applied.
func ForgeSubmitFrom(v any) (*ForgeSubmit, error) {
	p, err := normalize[ForgeSubmit]("payload", v)
	if err != nil {
		return nil, err
	}
	p.ApplyDefaults()
	return p, nil
}
