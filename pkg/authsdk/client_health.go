package authsdk

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// ErrNotReady is returned by GetReadiness when tokenkeep answers 503.
var ErrNotReady = errors.New("tokenkeep: not ready")

// GetLiveness reports whether the tokenkeep process is serving.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	return c.getHealth(ctx, "/livez")
}

// GetReadiness reports whether tokenkeep can reach its document store. A
// degraded service yields the decoded probe together with ErrNotReady, so
// callers can inspect which check failed.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	health, err := c.getHealth(ctx, "/readyz", http.StatusServiceUnavailable)
	if err != nil {
		return nil, err
	}
	if health.Status != "ok" {
		detail := health.Status
		if health.Checks != nil {
			detail = "database " + health.Checks.Database
		}
		return health, fmt.Errorf("%w: %s", ErrNotReady, detail)
	}
	return health, nil
}

func (c *SDKClient) getHealth(ctx context.Context, path string, alsoExpected ...int) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, append([]int{http.StatusOK}, alsoExpected...)...); err != nil {
		return nil, err
	}
	return &health, nil
}
