package guide

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace/noop"

	"github.com/pdiddy/guide-creator/internal/crew"
	"github.com/pdiddy/guide-creator/internal/llm"
	"github.com/pdiddy/guide-creator/internal/outline"
	"github.com/pdiddy/guide-creator/pkg/types"
)

const flowOutlineJSON = `{
  "title": "A Guide to Sourdough",
  "introduction": "Bread from flour, water, and time.",
  "target_audience": "Beginner home bakers.",
  "sections": [
    {"title": "The Starter", "description": "Cultivating wild yeast."},
    {"title": "The Bake", "description": "Shaping and baking the loaf."}
  ],
  "conclusion": "Practice makes bread."
}`

// stageClient answers JSON-mode requests with the outline and everything
// else with canned section prose.
type stageClient struct {
	mu    sync.Mutex
	calls []llm.Request
}

func (c *stageClient) Complete(_ context.Context, req llm.Request) (llm.Response, error) {
	c.mu.Lock()
	c.calls = append(c.calls, req)
	c.mu.Unlock()

	if req.JSONMode {
		return llm.Response{Text: flowOutlineJSON}, nil
	}
	return llm.Response{Text: "```markdown\n# Section Draft\n\nBody text.\n```"}, nil
}

type recordedStep struct {
	name  string
	chars int
}

type memRecorder struct {
	steps []recordedStep
}

func (r *memRecorder) RecordStep(_ context.Context, name string, _ time.Duration, chars int) error {
	r.steps = append(r.steps, recordedStep{name: name, chars: chars})
	return nil
}

func newTestFlow(t *testing.T, client llm.Client) (*Flow, *memRecorder) {
	t.Helper()
	rec := &memRecorder{}
	return &Flow{
		Client:     client,
		Crew:       crew.New(crew.DefaultDefinition(), client, 1),
		Tracer:     noop.NewTracerProvider().Tracer("test"),
		Steps:      rec,
		MaxRetries: 1,
		OutputDir:  t.TempDir(),
	}, rec
}

func TestFlowRun(t *testing.T) {
	client := &stageClient{}
	f, rec := newTestFlow(t, client)

	res, err := f.Run(context.Background(), "sourdough baking", types.AudienceBeginner)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if res.Sections != 2 {
		t.Errorf("Sections = %d, want 2", res.Sections)
	}
	if res.Outline.Title != "A Guide to Sourdough" {
		t.Errorf("outline title = %q", res.Outline.Title)
	}

	// The outline artifact round-trips.
	raw, err := os.ReadFile(res.OutlinePath)
	if err != nil {
		t.Fatalf("reading outline: %v", err)
	}
	var o types.GuideOutline
	if err := json.Unmarshal(raw, &o); err != nil {
		t.Fatalf("outline not valid JSON: %v", err)
	}
	if filepath.Base(res.OutlinePath) != outline.OutlineFile {
		t.Errorf("outline path = %q", res.OutlinePath)
	}

	// The compiled guide holds cleaned section content in order.
	guide, err := os.ReadFile(res.GuidePath)
	if err != nil {
		t.Fatalf("reading guide: %v", err)
	}
	text := string(guide)
	for _, want := range []string{
		"# A Guide to Sourdough",
		"## Introduction",
		"## Section Draft",
		"## Conclusion",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("guide missing %q", want)
		}
	}
	if strings.Contains(text, "```") {
		t.Error("guide still contains code fences")
	}

	// Steps recorded: outline plus one per section.
	if len(rec.steps) != 3 {
		t.Fatalf("recorded %d steps, want 3", len(rec.steps))
	}
	if rec.steps[0].name != "outline" {
		t.Errorf("first step = %q", rec.steps[0].name)
	}
	if rec.steps[1].name != "section: The Starter" || rec.steps[2].name != "section: The Bake" {
		t.Errorf("section steps = %q, %q", rec.steps[1].name, rec.steps[2].name)
	}
}

func TestFlowThreadsPreviousSections(t *testing.T) {
	client := &stageClient{}
	f, _ := newTestFlow(t, client)

	if _, err := f.Run(context.Background(), "sourdough baking", types.AudienceIntermediate); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	// Crew runs two tasks per section; the first task of the first section
	// sees the sentinel, the first task of the second section sees the
	// completed first section.
	var sectionCalls []llm.Request
	for _, call := range client.calls {
		if !call.JSONMode {
			sectionCalls = append(sectionCalls, call)
		}
	}
	if len(sectionCalls) != 4 {
		t.Fatalf("section calls = %d, want 4", len(sectionCalls))
	}
	if !strings.Contains(sectionCalls[0].User, "No previous sections written yet.") {
		t.Errorf("first section missing sentinel:\n%s", sectionCalls[0].User)
	}
	if !strings.Contains(sectionCalls[2].User, "# Previously Written Sections") {
		t.Errorf("second section missing previous context:\n%s", sectionCalls[2].User)
	}
	if !strings.Contains(sectionCalls[2].User, "## The Starter") {
		t.Errorf("second section missing first section title:\n%s", sectionCalls[2].User)
	}
}

func TestFlowRejectsInvalidAudience(t *testing.T) {
	f, _ := newTestFlow(t, &stageClient{})
	if _, err := f.Run(context.Background(), "topic", types.AudienceLevel("expert")); err == nil {
		t.Fatal("expected error for invalid audience")
	}
}

func TestFlowWrapsSectionErrors(t *testing.T) {
	client := &llm.MockClient{Fallback: llm.Response{Text: flowOutlineJSON}}
	f := &Flow{
		Client:     client,
		Crew:       crew.New(crew.DefaultDefinition(), &llm.MockClient{Err: context.DeadlineExceeded}, 1),
		Tracer:     noop.NewTracerProvider().Tracer("test"),
		MaxRetries: 1,
		OutputDir:  t.TempDir(),
	}

	_, err := f.Run(context.Background(), "topic", types.AudienceAdvanced)
	if err == nil {
		t.Fatal("expected section error")
	}
	if !strings.Contains(err.Error(), `section "The Starter"`) {
		t.Errorf("error = %v, want section name", err)
	}
}
