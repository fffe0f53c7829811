package anvil

import (
	"encoding/json"
	"fmt"

	"github.com/levrofin/anvil-go/graphql"
	"github.com/levrofin/anvil-go/httpclient"
)

// Envelope is the uniform response wrapper: the extracted data, plus
// the HTTP response headers when the call used WithHeaders. Headers is
// nil otherwise.
type Envelope[T any] struct {
	Response T
	Headers  map[string]string
}

// unwrap applies the extraction function to a GraphQL result and
// attaches the response headers only when the call asked for them.
// Every facade method funnels through this so header capture never
// needs per-method handling.
func unwrap[T any](res *graphql.Result, co *callOptions, extract func([]byte) (T, error)) (*Envelope[T], error) {
	data, err := extract(res.Data)
	if err != nil {
		return nil, err
	}
	env := &Envelope[T]{Response: data}
	if co.includeHeaders {
		env.Headers = res.Headers
	}
	return env, nil
}

// unwrapBytes is the REST/plain-call analogue of unwrap: the body is
// the data.
func unwrapBytes(resp *httpclient.Response, co *callOptions) *Envelope[[]byte] {
	env := &Envelope[[]byte]{Response: resp.Body}
	if co.includeHeaders {
		env.Headers = resp.Headers
	}
	return env
}

// extractField decodes one named field out of a GraphQL data member.
func extractField[T any](data []byte, field string) (T, error) {
	var raw map[string]json.RawMessage
	var out T
	if err := json.Unmarshal(data, &raw); err != nil {
		return out, fmt.Errorf("anvil: decode %s response: %w", field, err)
	}
	member, ok := raw[field]
	if !ok {
		return out, fmt.Errorf("anvil: response has no %s field", field)
	}
	if err := json.Unmarshal(member, &out); err != nil {
		return out, fmt.Errorf("anvil: decode %s: %w", field, err)
	}
	return out, nil
}
