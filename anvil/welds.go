package anvil

import (
	"context"

	"github.com/levrofin/anvil-go/graphql"
	"github.com/levrofin/anvil-go/logger"
)

const weldsQuery = `query currentUser {
  currentUser {
    organizations {
      welds {
        eid
        slug
        title
        forges {
          eid
          name
        }
      }
    }
  }
}`

const weldQuery = `query WeldQuery($eid: String!) {
  weld(eid: $eid) {
    eid
    slug
    name
    forges {
      eid
      name
      slug
    }
  }
}`

// GetWelds lists the welds (workflows) across all of the user's
// organizations, flattened into a single ordered slice.
func (c *Client) GetWelds(ctx context.Context, opts ...CallOption) (*Envelope[[]Weld], error) {
	co := applyCallOptions(opts)

	c.log.Debug("listing welds", logger.Fields(logger.FieldOperation, "getWelds"))

	res, err := c.gql.Do(ctx, graphql.Request{Query: weldsQuery})
	if err != nil {
		return nil, err
	}
	return unwrap(res, co, func(data []byte) ([]Weld, error) {
		user, err := extractField[User](data, "currentUser")
		if err != nil {
			return nil, err
		}
		var welds []Weld
		for _, org := range user.Organizations {
			welds = append(welds, org.Welds...)
		}
		return welds, nil
	})
}

// GetWeld fetches a single weld by eid, including its forges.
func (c *Client) GetWeld(ctx context.Context, eid string, opts ...CallOption) (*Envelope[Weld], error) {
	co := applyCallOptions(opts)

	c.log.Debug("fetching weld", logger.Fields(
		logger.FieldOperation, "getWeld",
		logger.FieldEid, eid,
	))

	res, err := c.gql.Do(ctx, graphql.Request{
		Query:     weldQuery,
		Variables: map[string]any{"eid": eid},
	})
	if err != nil {
		return nil, err
	}
	return unwrap(res, co, func(data []byte) (Weld, error) {
		return extractField[Weld](data, "weld")
	})
}
