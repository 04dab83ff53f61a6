// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tracking

import (
	"context"

	"github.com/pdiddy/guide-creator/internal/llm"
)

// MeteredClient decorates an llm.Client so every successful call lands in
// the run's token and cost tally. When the API omits usage numbers the
// meter falls back to character-based estimates.
type MeteredClient struct {
	inner llm.Client
	run   *Run
}

// NewMeteredClient wraps inner so its calls are charged to run.
func NewMeteredClient(inner llm.Client, run *Run) *MeteredClient {
	return &MeteredClient{inner: inner, run: run}
}

func (m *MeteredClient) Complete(ctx context.Context, req llm.Request) (llm.Response, error) {
	resp, err := m.inner.Complete(ctx, req)
	if err != nil {
		return llm.Response{}, err
	}

	in := resp.PromptTokens
	if in == 0 {
		in = EstimateTokens(req.System + req.User)
	}
	out := resp.CompletionTokens
	if out == 0 {
		out = EstimateTokens(resp.Text)
	}

	model := resp.Model
	if model == "" {
		model = req.Model
	}
	m.run.RecordCall(model, in, out)

	return resp, nil
}
