package anvil

import (
	"github.com/levrofin/anvil-go/graphql"
)

// CallOption configures a single API call.
type CallOption func(*callOptions)

type callOptions struct {
	includeHeaders bool
	versionNumber  *int
	fields         []string
	castArgs       []graphql.Arg
	showAll        bool
	rawJSON        []byte
}

func applyCallOptions(opts []CallOption) *callOptions {
	var co callOptions
	for _, opt := range opts {
		opt(&co)
	}
	return &co
}

// WithHeaders captures the HTTP response headers into the returned
// envelope alongside the extracted data.
func WithHeaders() CallOption {
	return func(co *callOptions) { co.includeHeaders = true }
}

// WithVersionNumber selects a specific template version. Use
// VersionLatest for the newest draft; without this option the API uses
// the latest published version. Zero is sent as-is and is not a valid
// selector; omit the option rather than passing 0.
func WithVersionNumber(n int) CallOption {
	return func(co *callOptions) { co.versionNumber = &n }
}

// WithFields overrides the default field selection on cast queries.
func WithFields(fields ...string) CallOption {
	return func(co *callOptions) { co.fields = fields }
}

// WithCastArg adds an extra argument pair to a cast query, e.g.
// graphql.Raw("exampleData", "true").
func WithCastArg(arg graphql.Arg) CallOption {
	return func(co *callOptions) { co.castArgs = append(co.castArgs, arg) }
}

// WithShowAll lists all casts instead of only templates.
func WithShowAll() CallOption {
	return func(co *callOptions) { co.showAll = true }
}

// WithJSON supplies a raw JSON payload for operations that accept one
// in place of a typed payload.
func WithJSON(raw []byte) CallOption {
	return func(co *callOptions) { co.rawJSON = raw }
}
