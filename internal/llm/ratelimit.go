// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitedClient enforces a minimum interval between API calls so that
// per-section generation does not trip the provider's rate limits.
type RateLimitedClient struct {
	inner   Client
	limiter *rate.Limiter
}

// NewRateLimitedClient wraps inner with a limiter that admits one call per
// interval, with a burst of one.
func NewRateLimitedClient(inner Client, interval time.Duration) *RateLimitedClient {
	return &RateLimitedClient{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

func (r *RateLimitedClient) Complete(ctx context.Context, req Request) (Response, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return Response{}, err
	}
	return r.inner.Complete(ctx, req)
}
