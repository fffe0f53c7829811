// Package anvil is the client facade for the Anvil document-generation
// and e-signature API. It normalizes request payloads, dispatches REST
// or GraphQL calls over the httpclient transport, and unwraps the JSON
// responses.
//
// # Usage
//
//	client, err := anvil.New(&config.Config{APIKey: "my-key"})
//	if err != nil {
//	    // ...
//	}
//
//	pdf, err := client.FillPDF(ctx, "template-eid", map[string]any{
//	    "data": map[string]any{"firstName": "Sally"},
//	})
//
// Every method performs exactly one synchronous network call. Issuing
// calls in parallel is the caller's business; the client holds no
// mutable state.
package anvil
