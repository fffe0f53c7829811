package graphql

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/levrofin/anvil-go/httpclient"
)

// Path is the GraphQL endpoint path on the Anvil API host.
const Path = "/graphql"

// Result is the outcome of a GraphQL call: the "data" member of the
// reply plus the HTTP response headers.
type Result struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the HTTP response headers.
	Headers map[string]string
	// Data is the raw "data" member of the GraphQL reply.
	Data json.RawMessage
}

// Client issues GraphQL queries and mutations over an httpclient.Client.
type Client struct {
	hc *httpclient.Client
}

// NewClient creates a GraphQL client over the given transport.
func NewClient(hc *httpclient.Client) *Client {
	return &Client{hc: hc}
}

// Do posts a GraphQL request and returns its data member. GraphQL-level
// errors in the reply are returned as errors.
func (c *Client) Do(ctx context.Context, req Request, opts ...httpclient.RequestOption) (*Result, error) {
	httpReq := httpclient.Request{
		Method: http.MethodPost,
		Path:   Path,
		Body:   req,
	}
	for _, opt := range opts {
		opt(&httpReq)
	}
	return c.roundTrip(ctx, httpReq)
}

// Upload is a file attached to a multipart mutation.
type Upload struct {
	// Path is the object path into the operation variables that the
	// file replaces, e.g. "variables.files.0.file".
	Path string
	// FileName is the file name sent to the server.
	FileName string
	// ContentType is the MIME type of the file.
	ContentType string
	// Data is the file content.
	Data []byte
}

// DoMultipart posts a mutation as multipart/form-data per the GraphQL
// multipart request spec: an "operations" field with the request JSON, a
// "map" field binding numbered file parts to variable paths, then the
// file parts themselves.
func (c *Client) DoMultipart(ctx context.Context, req Request, uploads []Upload, opts ...httpclient.RequestOption) (*Result, error) {
	operations, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("graphql: marshal operations: %w", err)
	}

	fileMap := make(map[string][]string, len(uploads))
	files := make([]httpclient.FileField, 0, len(uploads))
	for i, u := range uploads {
		key := fmt.Sprintf("%d", i+1)
		fileMap[key] = []string{u.Path}
		files = append(files, httpclient.FileField{
			FieldName:   key,
			FileName:    u.FileName,
			ContentType: u.ContentType,
			Data:        u.Data,
		})
	}
	mapJSON, err := json.Marshal(fileMap)
	if err != nil {
		return nil, fmt.Errorf("graphql: marshal file map: %w", err)
	}

	httpReq := httpclient.Request{
		Method: http.MethodPost,
		Path:   Path,
		Body: &httpclient.MultipartBody{
			Fields: []httpclient.FormField{
				{Name: "operations", Value: string(operations)},
				{Name: "map", Value: string(mapJSON)},
			},
			Files: files,
		},
	}
	for _, opt := range opts {
		opt(&httpReq)
	}
	return c.roundTrip(ctx, httpReq)
}

// roundTrip sends the request and decodes the GraphQL reply.
func (c *Client) roundTrip(ctx context.Context, httpReq httpclient.Request) (*Result, error) {
	resp, err := c.hc.Do(ctx, httpReq)
	if err != nil {
		return nil, err
	}

	var body Response
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return nil, fmt.Errorf("graphql: decode response: %w", err)
	}
	if err := body.Err(); err != nil {
		return nil, err
	}

	return &Result{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Data:       body.Data,
	}, nil
}
