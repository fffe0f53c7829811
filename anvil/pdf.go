package anvil

import (
	"context"
	"net/http"
	"strconv"

	"github.com/levrofin/anvil-go/httpclient"
	"github.com/levrofin/anvil-go/logger"
	"github.com/levrofin/anvil-go/payload"
)

// restPath prefixes a path with the REST API mount point.
func restPath(path string) string {
	return "/api/v1/" + path
}

// FillPDF fills an existing template with the provided payload data and
// returns the rendered PDF bytes.
//
// Use GetCasts to list the templates available for this call. The
// payload may be a map, a raw JSON string, or a *payload.FillPDF.
// WithVersionNumber selects a specific template version; without it the
// API uses the latest published version.
func (c *Client) FillPDF(ctx context.Context, templateID string, p any, opts ...CallOption) (*Envelope[[]byte], error) {
	co := applyCallOptions(opts)

	data, err := payload.FillPDFFrom(p)
	if err != nil {
		return nil, err
	}

	req := httpclient.Request{
		Method: http.MethodPost,
		Path:   restPath("fill/" + templateID + ".pdf"),
		Body:   data,
	}
	if co.versionNumber != nil {
		req.Query = map[string]string{"versionNumber": strconv.Itoa(*co.versionNumber)}
	}

	c.log.Debug("filling pdf", logger.Fields(
		logger.FieldOperation, "fillPDF",
		logger.FieldTemplateID, templateID,
	))

	resp, err := c.hc.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	return unwrapBytes(resp, co), nil
}

// GeneratePDF creates a new PDF from markdown or HTML content and
// returns the rendered PDF bytes. The payload may be a map, a raw JSON
// string, or a *payload.GeneratePDF.
func (c *Client) GeneratePDF(ctx context.Context, p any, opts ...CallOption) (*Envelope[[]byte], error) {
	co := applyCallOptions(opts)

	data, err := payload.GeneratePDFFrom(p)
	if err != nil {
		return nil, err
	}

	c.log.Debug("generating pdf", logger.Fields(logger.FieldOperation, "generatePDF"))

	resp, err := c.hc.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   restPath("generate-pdf"),
		Body:   data,
	})
	if err != nil {
		return nil, err
	}
	return unwrapBytes(resp, co), nil
}
