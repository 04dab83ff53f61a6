// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import "github.com/pdiddy/guide-creator/pkg/types"

// NewClient builds the configured client stack: the OpenAI backend,
// rate-limited when llm.rate_limit is set, memoized when llm.cache_ttl is
// set. The cache sits outside the limiter so cache hits never wait.
func NewClient(cfg types.LLMConfig) (Client, error) {
	base, err := NewOpenAIClient(cfg)
	if err != nil {
		return nil, err
	}

	var c Client = base
	if cfg.RateLimit > 0 {
		c = NewRateLimitedClient(c, cfg.RateLimit)
	}
	if cfg.CacheTTL > 0 {
		c = NewCachedClient(c, cfg.CacheTTL)
	}
	return c, nil
}
