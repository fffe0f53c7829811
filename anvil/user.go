package anvil

import (
	"context"

	"github.com/levrofin/anvil-go/graphql"
	"github.com/levrofin/anvil-go/logger"
)

const currentUserQuery = `query currentUser {
  currentUser {
    name
    email
    eid
    role
    organizations {
      eid
      name
      slug
      casts {
        eid
        name
      }
    }
  }
}`

// GetCurrentUser fetches the user attached to the API key, including
// the organizations and casts visible to it.
func (c *Client) GetCurrentUser(ctx context.Context, opts ...CallOption) (*Envelope[User], error) {
	co := applyCallOptions(opts)

	c.log.Debug("fetching current user", logger.Fields(logger.FieldOperation, "getCurrentUser"))

	res, err := c.gql.Do(ctx, graphql.Request{Query: currentUserQuery})
	if err != nil {
		return nil, err
	}
	return unwrap(res, co, func(data []byte) (User, error) {
		return extractField[User](data, "currentUser")
	})
}
