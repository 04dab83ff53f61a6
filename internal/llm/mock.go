// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import "context"

// MockClient is a canned-response Client for tests and dry runs.
// Responses are matched against the user message by exact key; Fallback
// is returned when no key matches.
type MockClient struct {
	Responses map[string]Response
	Fallback  Response
	Err       error

	// Calls records every request, in order.
	Calls []Request
}

func (m *MockClient) Complete(_ context.Context, req Request) (Response, error) {
	m.Calls = append(m.Calls, req)
	if m.Err != nil {
		return Response{}, m.Err
	}
	if resp, ok := m.Responses[req.User]; ok {
		return resp, nil
	}
	return m.Fallback, nil
}
