package anvil

import (
	"context"
	"net/http"

	"github.com/levrofin/anvil-go/httpclient"
	"github.com/levrofin/anvil-go/logger"
)

// DownloadDocuments fetches the documents of a document group as a zip
// archive. The document group eid comes from the response of
// CreateEtchPacket or ForgeSubmit.
func (c *Client) DownloadDocuments(ctx context.Context, documentGroupEid string, opts ...CallOption) (*Envelope[[]byte], error) {
	co := applyCallOptions(opts)

	c.log.Debug("downloading documents", logger.Fields(
		logger.FieldOperation, "downloadDocuments",
		logger.FieldEid, documentGroupEid,
	))

	resp, err := c.hc.Do(ctx, httpclient.Request{
		Method: http.MethodGet,
		Path:   "/api/document-group/" + documentGroupEid + ".zip",
	})
	if err != nil {
		return nil, err
	}
	return unwrapBytes(resp, co), nil
}
