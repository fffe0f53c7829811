package anvil

import (
	"context"

	"github.com/levrofin/anvil-go/errors"
	"github.com/levrofin/anvil-go/graphql"
	"github.com/levrofin/anvil-go/logger"
	"github.com/levrofin/anvil-go/mutation"
	"github.com/levrofin/anvil-go/payload"
)

// CreateEtchPacket creates an e-signature packet. The payload may be a
// map, a raw JSON string, a *payload.CreateEtchPacket, or a prebuilt
// *mutation.CreateEtchPacket; alternatively pass nil and supply the
// payload with WithJSON. Files carrying raw bytes are sent as multipart
// uploads; base64-embedded files travel inline in the variables.
func (c *Client) CreateEtchPacket(ctx context.Context, p any, opts ...CallOption) (*Envelope[EtchPacket], error) {
	co := applyCallOptions(opts)

	var m *mutation.CreateEtchPacket
	switch x := p.(type) {
	case *mutation.CreateEtchPacket:
		m = x
	case nil:
		if co.rawJSON == nil {
			return nil, errors.MissingArgument("payload", "json")
		}
		pl, err := payload.CreateEtchPacketFrom(co.rawJSON)
		if err != nil {
			return nil, err
		}
		m = mutation.NewCreateEtchPacket(pl)
	default:
		pl, err := payload.CreateEtchPacketFrom(p)
		if err != nil {
			return nil, err
		}
		m = mutation.NewCreateEtchPacket(pl)
	}

	vars, uploads, err := m.Operation()
	if err != nil {
		return nil, err
	}

	c.log.Debug("creating etch packet", logger.Fields(
		logger.FieldOperation, "createEtchPacket",
		"uploads", len(uploads),
	))

	req := graphql.Request{Query: m.Document(), Variables: vars}
	var res *graphql.Result
	if len(uploads) > 0 {
		res, err = c.gql.DoMultipart(ctx, req, uploads)
	} else {
		res, err = c.gql.Do(ctx, req)
	}
	if err != nil {
		return nil, err
	}
	return unwrap(res, co, func(data []byte) (EtchPacket, error) {
		return extractField[EtchPacket](data, "createEtchPacket")
	})
}

// GenerateEtchSigningURL creates a signing URL for one signer, bound to
// one of the caller's own users via clientUserID.
func (c *Client) GenerateEtchSigningURL(ctx context.Context, signerEid, clientUserID string, opts ...CallOption) (*Envelope[string], error) {
	co := applyCallOptions(opts)

	m := &mutation.GenerateEtchSigningURL{
		SignerEid:    signerEid,
		ClientUserID: clientUserID,
	}
	vars, err := m.Variables()
	if err != nil {
		return nil, err
	}

	c.log.Debug("generating signing url", logger.Fields(
		logger.FieldOperation, "generateEtchSignURL",
		logger.FieldEid, signerEid,
	))

	res, err := c.gql.Do(ctx, graphql.Request{Query: m.Document(), Variables: vars})
	if err != nil {
		return nil, err
	}
	return unwrap(res, co, func(data []byte) (string, error) {
		return extractField[string](data, "generateEtchSignURL")
	})
}
