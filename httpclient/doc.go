// Package httpclient provides the HTTP transport for the Anvil client:
// API-key authentication, JSON and multipart request encoding, and
// classification of HTTP status codes into typed errors.
//
// The base Client handles protocol concerns only. The graphql package
// layers GraphQL requests on top of it; the anvil package layers REST
// and plain binary calls.
//
// # Basic Usage
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://app.useanvil.com",
//	    Auth:    httpclient.APIKeyAuth("my-api-key"),
//	})
//
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodPost,
//	    Path:   "/api/v1/fill/abc123.pdf",
//	    Body:   payload,
//	})
package httpclient
