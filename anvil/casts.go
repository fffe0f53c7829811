package anvil

import (
	"context"
	"fmt"
	"strings"

	"github.com/levrofin/anvil-go/graphql"
	"github.com/levrofin/anvil-go/logger"
)

// defaultCastFields is the field selection used when the caller does
// not override it.
var defaultCastFields = []string{"eid", "title", "fieldInfo"}

// GetCast fetches a single cast (document template) by eid. WithFields
// overrides the default eid/title/fieldInfo selection; WithCastArg adds
// extra query arguments; WithVersionNumber selects a template version
// (the API defaults to the latest published one).
func (c *Client) GetCast(ctx context.Context, eid string, opts ...CallOption) (*Envelope[Cast], error) {
	co := applyCallOptions(opts)

	fields := co.fields
	if len(fields) == 0 {
		fields = defaultCastFields
	}

	args := append([]graphql.Arg{}, co.castArgs...)
	args = append(args, graphql.String("eid", eid))
	if co.versionNumber != nil {
		args = append(args, graphql.Int("versionNumber", *co.versionNumber))
	}

	c.log.Debug("fetching cast", logger.Fields(
		logger.FieldOperation, "getCast",
		logger.FieldEid, eid,
	))

	res, err := c.gql.Do(ctx, graphql.Request{
		Query: graphql.BuildQuery("cast", args, fields),
	})
	if err != nil {
		return nil, err
	}
	return unwrap(res, co, func(data []byte) (Cast, error) {
		return extractField[Cast](data, "cast")
	})
}

// GetCasts lists casts across all of the user's organizations, flattened
// into a single ordered slice. Only templates are returned unless
// WithShowAll is given.
func (c *Client) GetCasts(ctx context.Context, opts ...CallOption) (*Envelope[[]Cast], error) {
	co := applyCallOptions(opts)

	fields := co.fields
	if len(fields) == 0 {
		fields = defaultCastFields
	}

	castArgs := "(isTemplate: true)"
	if co.showAll {
		castArgs = ""
	}

	query := fmt.Sprintf(`{
  currentUser {
    organizations {
      casts %s{
        %s
      }
    }
  }
}`, castArgs, strings.Join(fields, " "))

	c.log.Debug("listing casts", logger.Fields(
		logger.FieldOperation, "getCasts",
		"show_all", co.showAll,
	))

	res, err := c.gql.Do(ctx, graphql.Request{Query: query})
	if err != nil {
		return nil, err
	}
	return unwrap(res, co, func(data []byte) ([]Cast, error) {
		user, err := extractField[User](data, "currentUser")
		if err != nil {
			return nil, err
		}
		var casts []Cast
		for _, org := range user.Organizations {
			casts = append(casts, org.Casts...)
		}
		return casts, nil
	})
}
