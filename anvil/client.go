package anvil

import (
	"context"

	"github.com/levrofin/anvil-go/config"
	"github.com/levrofin/anvil-go/graphql"
	"github.com/levrofin/anvil-go/httpclient"
	"github.com/levrofin/anvil-go/logger"
	"github.com/levrofin/anvil-go/version"
)

// Template version sentinels for REST and GraphQL version parameters.
const (
	// VersionLatest selects the latest version, usually a draft.
	VersionLatest = -1
	// VersionLatestPublished selects the latest published version. This
	// is what the API defaults to when no version is given.
	VersionLatestPublished = -2
)

// Client is the Anvil API facade. All methods are safe for concurrent
// use; each performs a single network call.
type Client struct {
	cfg *config.Config
	hc  *httpclient.Client
	gql *graphql.Client
	log *logger.Logger
}

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	logger    *logger.Logger
	transport *httpclient.Client
}

// WithLogger injects a logger, overriding the one built from the
// configuration's Logging section.
func WithLogger(l *logger.Logger) Option {
	return func(o *clientOptions) { o.logger = l }
}

// WithTransport injects a pre-built HTTP transport, replacing the one
// the client would construct from its configuration.
func WithTransport(hc *httpclient.Client) Option {
	return func(o *clientOptions) { o.transport = hc }
}

// New creates a client for the given configuration.
func New(cfg *config.Config, opts ...Option) (*Client, error) {
	var o clientOptions
	for _, opt := range opts {
		opt(&o)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := o.logger
	if log == nil {
		log = logger.New(&cfg.Logging, "anvil")
	}

	hc := o.transport
	if hc == nil {
		var err error
		hc, err = httpclient.New(httpclient.Config{
			BaseURL:   cfg.BaseURL,
			Auth:      httpclient.APIKeyAuth(cfg.APIKey),
			UserAgent: version.UserAgent(),
			Logger:    log,
		})
		if err != nil {
			return nil, err
		}
	}

	return &Client{
		cfg: cfg,
		hc:  hc,
		gql: graphql.NewClient(hc),
		log: log.WithComponent("anvil"),
	}, nil
}

// NewFromEnv creates a client configured from the environment (and a
// .env file when present). See the config package for the recognized
// variables. The logger also comes from the environment (LOG_LEVEL,
// LOG_FORMAT) unless WithLogger overrides it.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	opts = append([]Option{WithLogger(logger.NewFromEnv("anvil"))}, opts...)
	return New(cfg, opts...)
}

// Query issues a raw GraphQL query. Most callers want the typed
// methods; this is the escape hatch for queries the facade does not
// model.
func (c *Client) Query(ctx context.Context, query string, variables map[string]any, opts ...CallOption) (*Envelope[[]byte], error) {
	co := applyCallOptions(opts)
	c.log.Debug("dispatching query", logger.Fields(logger.FieldOperation, "query"))
	res, err := c.gql.Do(ctx, graphql.Request{Query: query, Variables: variables})
	if err != nil {
		return nil, err
	}
	return unwrap(res, co, func(data []byte) ([]byte, error) {
		return data, nil
	})
}

// Mutate issues a raw GraphQL mutation.
func (c *Client) Mutate(ctx context.Context, mutation string, variables map[string]any, opts ...CallOption) (*Envelope[[]byte], error) {
	co := applyCallOptions(opts)
	c.log.Debug("dispatching mutation", logger.Fields(logger.FieldOperation, "mutate"))
	res, err := c.gql.Do(ctx, graphql.Request{Query: mutation, Variables: variables})
	if err != nil {
		return nil, err
	}
	return unwrap(res, co, func(data []byte) ([]byte, error) {
		return data, nil
	})
}
