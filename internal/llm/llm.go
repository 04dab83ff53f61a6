// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package llm abstracts the language model API behind a small Client
// interface so stages can be tested against mocks and composed with
// caching and rate-limiting decorators.
package llm

import (
	"context"
	"fmt"
	"math"
	"time"
)

// Request is a single chat completion request.
type Request struct {
	// System is the system message (optional).
	System string

	// User is the user message.
	User string

	// Model overrides the client's default model when set.
	Model string

	// JSONMode asks the model to respond with a single JSON object.
	JSONMode bool
}

// Response is the model's reply plus token accounting for cost estimation.
type Response struct {
	// Text is the assistant message content.
	Text string

	// PromptTokens and CompletionTokens come from the API when available,
	// zero otherwise. Estimators fall back to character counts.
	PromptTokens     int64
	CompletionTokens int64

	// Model is the model that produced the response.
	Model string
}

// Client is the language model API surface used by the pipeline stages.
type Client interface {
	Complete(ctx context.Context, req Request) (Response, error)
}

// backoffBase controls the base duration for exponential backoff between
// retried calls. Tests override this to avoid real sleeps.
var backoffBase = time.Second

// CompleteWithRetry calls the client with exponential backoff on transient
// errors. The delay before attempt n is backoffBase * 2^(n-1).
func CompleteWithRetry(ctx context.Context, c Client, req Request, maxRetries int) (Response, error) {
	if maxRetries <= 0 {
		maxRetries = 3
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * backoffBase
			select {
			case <-ctx.Done():
				return Response{}, ctx.Err()
			case <-time.After(backoff):
			}
		}

		resp, err := c.Complete(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
	}
	return Response{}, fmt.Errorf("after %d retries: %w", maxRetries, lastErr)
}
