package mutation

import (
	"encoding/json"

	"github.com/levrofin/anvil-go/errors"
)

// Mutation pairs a payload with GraphQL mutation-document generation.
type Mutation interface {
	// Document returns the GraphQL mutation document.
	Document() string
	// Variables returns the operation variables.
	Variables() (map[string]any, error)
}

// compile-time assertions
var (
	_ Mutation = (*CreateEtchPacket)(nil)
	_ Mutation = (*ForgeSubmit)(nil)
	_ Mutation = (*GenerateEtchSigningURL)(nil)
)

// toVariables serializes a payload struct into an operation variables
// map, preserving the payload's json field names.
func toVariables(p any) (map[string]any, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, errors.InvalidPayload("payload is not JSON-encodable").WithCause(err)
	}
	var vars map[string]any
	if err := json.Unmarshal(data, &vars); err != nil {
		return nil, errors.InvalidPayload("payload did not serialize to an object").WithCause(err)
	}
	return vars, nil
}
