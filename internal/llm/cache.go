// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// CachedClient memoizes completions in memory. A repeat request with the
// same model, messages, and mode within the TTL is served from cache
// without touching the API. Useful when re-running a flow on an unchanged
// topic during development.
type CachedClient struct {
	inner Client
	cache *gocache.Cache
}

// NewCachedClient wraps inner with a TTL cache. Expired entries are purged
// at twice the TTL.
func NewCachedClient(inner Client, ttl time.Duration) *CachedClient {
	return &CachedClient{
		inner: inner,
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (c *CachedClient) Complete(ctx context.Context, req Request) (Response, error) {
	key := cacheKey(req)
	if v, ok := c.cache.Get(key); ok {
		return v.(Response), nil
	}

	resp, err := c.inner.Complete(ctx, req)
	if err != nil {
		return Response{}, err
	}
	c.cache.Set(key, resp, gocache.DefaultExpiration)
	return resp, nil
}

// cacheKey hashes the request fields that affect the model's output.
func cacheKey(req Request) string {
	h := sha256.New()
	h.Write([]byte(req.Model))
	h.Write([]byte{0})
	h.Write([]byte(req.System))
	h.Write([]byte{0})
	h.Write([]byte(req.User))
	if req.JSONMode {
		h.Write([]byte{1})
	}
	return hex.EncodeToString(h.Sum(nil))
}
