// Package platform talks to the hosted site platform: member/contact creation
// and automation triggers. Every call is elevated with a service token.
package platform

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/changhyeonkim/member-directory/go-api-server/internal/config"
	sharedError "github.com/changhyeonkim/member-directory/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/shared/token"
	"github.com/go-resty/resty/v2"
)

const (
	platformRequestFailed = "PLATFORM_REQUEST_FAILED" // errInfo
)

var (
	ErrPlatformRequest = sharedError.NewDomainError(platformRequestFailed)
)

func init() {
	sharedError.RegisterDomainErrorResponse(platformRequestFailed, sharedError.UpstreamFailed)
}

// APIError is the error body returned by the platform.
type APIError struct {
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type Client struct {
	client *resty.Client
	tokens token.Issuer
}

func NewClient(cfg *config.Config, tokens token.Issuer) *Client {
	cl := resty.New().
		SetBaseURL(strings.TrimRight(cfg.Platform.BaseURL, "/")).
		SetTimeout(cfg.Platform.Timeout)
	cl.SetHeader("Content-Type", "application/json")
	cl.SetHeader("Accept", "application/json")
	cl.SetHeader("User-Agent", cfg.App.Name)
	if cfg.Platform.SiteID != "" {
		cl.SetHeader("X-Site-Id", cfg.Platform.SiteID)
	}

	return &Client{
		client: cl,
		tokens: tokens,
	}
}

// HTTPClient exposes the underlying transport client (used by httpmock in tests).
func (c *Client) HTTPClient() *http.Client {
	return c.client.GetClient()
}

// post sends an elevated POST and decodes a 2xx body into result.
func (c *Client) post(ctx context.Context, scope, path string, body, result any) error {
	serviceToken, err := c.tokens.IssueServiceToken(scope)
	if err != nil {
		return fmt.Errorf("issue service token: %w", err)
	}

	var apiErr APIError
	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(serviceToken).
		SetBody(body).
		SetResult(result).
		SetError(&apiErr).
		Post(path)
	if err != nil {
		return fmt.Errorf("platform POST %s: %v: %w", path, err, ErrPlatformRequest)
	}

	if resp.IsError() {
		return fmt.Errorf("platform POST %s: status=%d message=%q: %w",
			path, resp.StatusCode(), apiErr.Message, ErrPlatformRequest)
	}

	return nil
}
