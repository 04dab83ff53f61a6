// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package telemetry exports traces to an Arize Phoenix collector over
// OTLP/HTTP. Without an API key the provider is a noop and the pipeline
// runs untraced.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/pdiddy/guide-creator/pkg/types"
)

const (
	// DefaultEndpoint is the Phoenix Cloud OTLP traces endpoint.
	DefaultEndpoint = "https://app.phoenix.arize.com/v1/traces"

	// DefaultProject is the project name attached to exported traces.
	DefaultProject = "ai-guide-creator"

	tracerName = "github.com/pdiddy/guide-creator"
)

// Provider owns the configured tracer provider, real or noop.
type Provider struct {
	enabled bool
	tp      *sdktrace.TracerProvider
}

// Setup builds the trace exporter from configuration. A missing API key
// disables export without error; the caller decides whether to mention it.
func Setup(ctx context.Context, cfg types.TelemetryConfig) (*Provider, error) {
	if cfg.APIKey == "" {
		return &Provider{}, nil
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	project := cfg.Project
	if project == "" {
		project = DefaultProject
	}

	exp, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(endpoint),
		// Phoenix Cloud authenticates with an api_key header, not Bearer.
		otlptracehttp.WithHeaders(map[string]string{"api_key": cfg.APIKey}),
	)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(project),
		attribute.String("openinference.project.name", project),
	))
	if err != nil {
		return nil, fmt.Errorf("building resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
	)

	return &Provider{enabled: true, tp: tp}, nil
}

// Enabled reports whether traces are actually exported.
func (p *Provider) Enabled() bool {
	return p.enabled
}

// Tracer returns the tracer for pipeline spans; a noop tracer when export
// is disabled.
func (p *Provider) Tracer() trace.Tracer {
	if !p.enabled {
		return noop.NewTracerProvider().Tracer(tracerName)
	}
	return p.tp.Tracer(tracerName)
}

// Shutdown flushes pending spans. Safe to call when disabled.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.enabled {
		return nil
	}
	return p.tp.Shutdown(ctx)
}
