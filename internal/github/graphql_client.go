package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"
)

const (
	// DefaultEndpoint is GitHub's public GraphQL endpoint
	DefaultEndpoint = "https://api.github.com/graphql"
	// DefaultTimeout bounds a single GraphQL round trip
	DefaultTimeout = 30 * time.Second
)

// Config holds the settings of a GraphQLClient
type Config struct {
	// Token is the GitHub credential. When empty, GITHUB_TOKEN is used.
	Token string
	// Endpoint overrides DefaultEndpoint
	Endpoint string
	// Timeout overrides DefaultTimeout
	Timeout time.Duration
	// Transport is the base HTTP transport, http.DefaultTransport when nil
	Transport http.RoundTripper
	// Debug dumps HTTP traffic at debug level
	Debug bool
	// WriteFields makes UpdateProjectItem persist field values upstream
	// instead of only echoing them back
	WriteFields bool
}

// GraphQLClient implements the Client interface using GitHub's GraphQL API.
// It holds no mutable state and is safe for concurrent use.
type GraphQLClient struct {
	client      Executor
	writeFields bool
}

var _ Client = (*GraphQLClient)(nil)

// ResolveToken returns the explicit token, falling back to GITHUB_TOKEN
func ResolveToken(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		return token, nil
	}
	return "", fmt.Errorf("%w: GitHub token is required, set GITHUB_TOKEN or pass a token", ErrConfig)
}

// NewGraphQLClient creates a new GitHub GraphQL client
func NewGraphQLClient(cfg Config) (*GraphQLClient, error) {
	token, err := ResolveToken(cfg.Token)
	if err != nil {
		return nil, err
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	base := cfg.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	var transport http.RoundTripper = &oauth2.Transport{
		Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
		Base:   &apiTransport{transport: base},
	}
	if cfg.Debug {
		// outside the oauth2 transport so the credential is never dumped
		transport = &debugTransport{transport: transport}
	}

	httpClient := &http.Client{Transport: transport, Timeout: timeout}
	client := githubv4.NewEnterpriseClient(endpoint, httpClient)

	return &GraphQLClient{client: client, writeFields: cfg.WriteFields}, nil
}

// NewGraphQLClientWithExecutor creates a client running its documents through exec
func NewGraphQLClientWithExecutor(exec Executor, writeFields bool) *GraphQLClient {
	return &GraphQLClient{client: exec, writeFields: writeFields}
}

func (c *GraphQLClient) query(ctx context.Context, what string, q any, variables map[string]any) error {
	ctx, capture := withErrorCapture(ctx)
	if err := c.client.Query(ctx, q, variables); err != nil {
		return fmt.Errorf("failed to query %s: %w", what, classify(err, capture.errors()))
	}
	return nil
}

func (c *GraphQLClient) mutate(ctx context.Context, what string, m any, input githubv4.Input) error {
	ctx, capture := withErrorCapture(ctx)
	if err := c.client.Mutate(ctx, m, input, nil); err != nil {
		return fmt.Errorf("failed to %s: %w", what, classify(err, capture.errors()))
	}
	return nil
}

// classify tags an executor error with its failure kind. Errors that did not
// come from the transport or the decoder are the GraphQL errors array of an
// HTTP 200 answer; rawErrors is that array as received, when it was captured.
func classify(err error, rawErrors json.RawMessage) error {
	if errors.Is(err, ErrTransport) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) ||
		errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: malformed response: %w", ErrTransport, err)
	}
	if len(rawErrors) > 0 {
		return fmt.Errorf("%w: %w: %s", ErrGraphQL, err, rawErrors)
	}
	return fmt.Errorf("%w: %w", ErrGraphQL, err)
}
