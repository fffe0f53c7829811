package anvil

import (
	"context"

	"github.com/levrofin/anvil-go/errors"
	"github.com/levrofin/anvil-go/graphql"
	"github.com/levrofin/anvil-go/logger"
	"github.com/levrofin/anvil-go/mutation"
	"github.com/levrofin/anvil-go/payload"
)

// ForgeSubmit submits data to a webform (forge), creating or updating a
// submission. The payload may be a map, a raw JSON string, or a
// *payload.ForgeSubmit; alternatively pass nil and supply the payload
// with WithJSON. Omitting weldDataEid starts a new workflow instance;
// including it (and optionally submissionEid) updates an existing one.
func (c *Client) ForgeSubmit(ctx context.Context, p any, opts ...CallOption) (*Envelope[Submission], error) {
	co := applyCallOptions(opts)

	source := p
	if source == nil {
		if co.rawJSON == nil {
			return nil, errors.MissingArgument("payload", "json")
		}
		source = co.rawJSON
	}
	pl, err := payload.ForgeSubmitFrom(source)
	if err != nil {
		return nil, err
	}

	m := mutation.NewForgeSubmit(pl)
	vars, err := m.Variables()
	if err != nil {
		return nil, err
	}

	c.log.Debug("submitting to forge", logger.Fields(
		logger.FieldOperation, "forgeSubmit",
		logger.FieldEid, pl.ForgeEid,
	))

	res, err := c.gql.Do(ctx, graphql.Request{Query: m.Document(), Variables: vars})
	if err != nil {
		return nil, err
	}
	return unwrap(res, co, func(data []byte) (Submission, error) {
		return extractField[Submission](data, "forgeSubmit")
	})
}
