// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package guide runs the two-stage creation flow: outline generation,
// then per-section content written by the crew, compiled into one
// Markdown document.
package guide

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/pdiddy/guide-creator/internal/crew"
	"github.com/pdiddy/guide-creator/internal/llm"
	"github.com/pdiddy/guide-creator/internal/outline"
	"github.com/pdiddy/guide-creator/pkg/types"
)

// StepRecorder receives timing for each completed flow step. A nil recorder
// disables tracking.
type StepRecorder interface {
	RecordStep(ctx context.Context, name string, d time.Duration, outputChars int) error
}

// Flow holds the wired dependencies for one guide creation run.
type Flow struct {
	// Client is the language model client used for the outline stage.
	Client llm.Client

	// Crew writes and reviews each section.
	Crew *crew.Crew

	// Tracer instruments the stages. Use a noop tracer to disable.
	Tracer trace.Tracer

	// Steps records step timings. Nil disables tracking.
	Steps StepRecorder

	// MaxRetries is the retry budget per model call.
	MaxRetries int

	// OutputDir receives guide_outline.json and complete_guide.md.
	OutputDir string

	// Progress receives human-readable progress lines. Nil discards them.
	Progress io.Writer
}

// Result summarizes a completed run.
type Result struct {
	Outline     *types.GuideOutline
	OutlinePath string
	GuidePath   string
	Sections    int
}

// Run executes the flow: outline, sections in order, compile, write.
func (f *Flow) Run(ctx context.Context, topic string, audience types.AudienceLevel) (*Result, error) {
	if !audience.Valid() {
		return nil, fmt.Errorf("invalid audience level %q", audience)
	}

	w := f.Progress
	if w == nil {
		w = io.Discard
	}

	fmt.Fprintf(w, "Creating a guide on %s for %s audience...\n", topic, audience)

	// Stage 1: outline.
	fmt.Fprintln(w, "Creating guide outline...")
	o, err := f.runOutline(ctx, topic, audience)
	if err != nil {
		return nil, err
	}

	outlinePath, err := outline.Write(o, f.OutputDir)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(w, "Guide outline created with %d sections\n", len(o.Sections))

	// Stage 2: sections, strictly in outline order so each section can
	// build on what came before.
	fmt.Fprintln(w, "Writing guide sections and compiling...")
	sections := make(map[string]string, len(o.Sections))
	var completed []string

	for _, s := range o.Sections {
		fmt.Fprintf(w, "Processing section: %s\n", s.Title)

		content, err := f.runSection(ctx, s, audience, completed, sections)
		if err != nil {
			return nil, fmt.Errorf("section %q: %w", s.Title, err)
		}

		sections[s.Title] = content
		completed = append(completed, s.Title)
		fmt.Fprintf(w, "Section completed: %s (%d/%d)\n", s.Title, len(completed), len(o.Sections))
	}

	guidePath := filepath.Join(f.OutputDir, GuideFile)
	if err := os.WriteFile(guidePath, []byte(Compile(o, sections)), 0o644); err != nil {
		return nil, fmt.Errorf("writing guide: %w", err)
	}
	fmt.Fprintf(w, "Complete guide compiled and saved to %s\n", guidePath)

	return &Result{
		Outline:     o,
		OutlinePath: outlinePath,
		GuidePath:   guidePath,
		Sections:    len(o.Sections),
	}, nil
}

func (f *Flow) runOutline(ctx context.Context, topic string, audience types.AudienceLevel) (*types.GuideOutline, error) {
	ctx, span := f.Tracer.Start(ctx, "guide.outline", trace.WithAttributes(
		attribute.String("guide.topic", topic),
		attribute.String("guide.audience", string(audience)),
	))
	defer span.End()

	start := time.Now()
	o, err := outline.Generate(ctx, f.Client, topic, audience, f.MaxRetries)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("guide.sections", len(o.Sections)))

	f.recordStep(ctx, "outline", time.Since(start), len(o.Title)+len(o.Introduction)+len(o.Conclusion))
	return o, nil
}

func (f *Flow) runSection(ctx context.Context, s types.Section, audience types.AudienceLevel, completed []string, sections map[string]string) (string, error) {
	ctx, span := f.Tracer.Start(ctx, "guide.section", trace.WithAttributes(
		attribute.String("guide.section_title", s.Title),
	))
	defer span.End()

	start := time.Now()
	raw, err := f.Crew.Kickoff(ctx, crew.Inputs{
		"section_title":       s.Title,
		"section_description": s.Description,
		"audience_level":      string(audience),
		"previous_sections":   previousSectionsText(completed, sections),
		"draft_content":       "",
	})
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	content := CleanSection(raw)
	f.recordStep(ctx, "section: "+s.Title, time.Since(start), len(content))
	return content, nil
}

// recordStep forwards to the recorder; tracking failures degrade to a
// stderr warning rather than aborting a paid run.
func (f *Flow) recordStep(ctx context.Context, name string, d time.Duration, chars int) {
	if f.Steps == nil {
		return
	}
	if err := f.Steps.RecordStep(ctx, name, d, chars); err != nil {
		fmt.Fprintf(os.Stderr, "warning: recording step %q: %v\n", name, err)
	}
}
