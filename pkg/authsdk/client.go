package authsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the tokenkeep service.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new tokenkeep client with a 10 second request timeout.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// IsTokenVerified reports whether the service accepts token as live. It lets
// an SDKClient guard routes through httpx.AuthnMiddleware.
func (c *SDKClient) IsTokenVerified(ctx context.Context, token string) (bool, error) {
	res, err := c.VerifyToken(ctx, token)
	if err != nil {
		return false, err
	}
	return res.IsVerified, nil
}
