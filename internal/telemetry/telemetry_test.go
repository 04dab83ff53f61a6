package telemetry

import (
	"context"
	"testing"

	"github.com/pdiddy/guide-creator/pkg/types"
)

func TestSetupWithoutKeyDisablesExport(t *testing.T) {
	p, err := Setup(context.Background(), types.TelemetryConfig{})
	if err != nil {
		t.Fatalf("Setup() error: %v", err)
	}
	if p.Enabled() {
		t.Error("provider enabled without an API key")
	}
	if p.Tracer() == nil {
		t.Error("disabled provider must still hand out a tracer")
	}
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() on disabled provider: %v", err)
	}
}

func TestSetupWithKeyEnablesExport(t *testing.T) {
	// Exporter creation does not dial the collector, so Setup succeeds
	// even without a reachable endpoint.
	p, err := Setup(context.Background(), types.TelemetryConfig{
		APIKey:   "phx-test",
		Endpoint: "http://127.0.0.1:0/v1/traces",
		Project:  "test-project",
	})
	if err != nil {
		t.Fatalf("Setup() error: %v", err)
	}
	if !p.Enabled() {
		t.Error("provider disabled despite API key")
	}
	if p.Tracer() == nil {
		t.Error("Tracer() returned nil")
	}

	// No spans were recorded, so shutdown has nothing to flush and must
	// not touch the network.
	if err := p.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error: %v", err)
	}
}

func TestDefaults(t *testing.T) {
	if DefaultEndpoint != "https://app.phoenix.arize.com/v1/traces" {
		t.Errorf("DefaultEndpoint = %q", DefaultEndpoint)
	}
	if DefaultProject != "ai-guide-creator" {
		t.Errorf("DefaultProject = %q", DefaultProject)
	}
}
