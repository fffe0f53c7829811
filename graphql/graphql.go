package graphql

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Request is the JSON body of a GraphQL POST.
type Request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// Response is the JSON body of a GraphQL reply.
type Response struct {
	Data   json.RawMessage `json:"data"`
	Errors []ResponseError `json:"errors,omitempty"`
}

// ResponseError is a single error entry in a GraphQL reply.
type ResponseError struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// Error implements the error interface.
func (e *ResponseError) Error() string {
	return fmt.Sprintf("graphql: %s", e.Message)
}

// Err returns an error when the response carries GraphQL errors.
func (r *Response) Err() error {
	switch len(r.Errors) {
	case 0:
		return nil
	case 1:
		return &r.Errors[0]
	default:
		messages := make([]string, len(r.Errors))
		for i, e := range r.Errors {
			messages[i] = e.Message
		}
		return fmt.Errorf("graphql: %s", strings.Join(messages, "; "))
	}
}
