// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package outline produces the structured guide outline from a single
// JSON-mode language model call.
package outline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/pdiddy/guide-creator/internal/llm"
	"github.com/pdiddy/guide-creator/pkg/types"
)

// OutlineFile is the name of the serialized outline artifact.
const OutlineFile = "guide_outline.json"

// systemPrompt pins the model to JSON output.
const systemPrompt = "You are a helpful assistant designed to output JSON."

// outlinePromptTmpl asks the model for a complete guide outline. The
// response must be a single JSON object matching types.GuideOutline.
var outlinePromptTmpl = template.Must(template.New("outline").Parse(`Create a detailed outline for a comprehensive guide on "{{.Topic}}" for {{.Audience}} level learners.

The outline should include:
1. A compelling title for the guide
2. An introduction to the topic
3. 4-6 main sections that cover the most important aspects of the topic
4. A conclusion or summary

For each section, provide a clear title and a brief description of what it should cover.

Respond with a JSON object with these fields:
- "title": the guide title
- "introduction": an introduction to the topic
- "target_audience": a description of the target audience
- "sections": an array of objects, each with "title" and "description"
- "conclusion": a conclusion or summary of the guide

Do not include any text outside the JSON object.`))

// Generate calls the model once in JSON mode and parses the outline.
func Generate(ctx context.Context, client llm.Client, topic string, audience types.AudienceLevel, maxRetries int) (*types.GuideOutline, error) {
	prompt, err := renderPrompt(topic, audience)
	if err != nil {
		return nil, fmt.Errorf("rendering outline prompt: %w", err)
	}

	resp, err := llm.CompleteWithRetry(ctx, client, llm.Request{
		System:   systemPrompt,
		User:     prompt,
		JSONMode: true,
	}, maxRetries)
	if err != nil {
		return nil, fmt.Errorf("generating outline: %w", err)
	}

	var o types.GuideOutline
	if err := json.Unmarshal([]byte(resp.Text), &o); err != nil {
		return nil, fmt.Errorf("parsing outline JSON: %w", err)
	}
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("invalid outline: %w", err)
	}
	return &o, nil
}

// Write serializes the outline as indented JSON to dir/guide_outline.json,
// creating dir if needed.
func Write(o *types.GuideOutline, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(dir, OutlineFile)
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serializing outline: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("writing outline: %w", err)
	}
	return path, nil
}

func renderPrompt(topic string, audience types.AudienceLevel) (string, error) {
	var buf bytes.Buffer
	err := outlinePromptTmpl.Execute(&buf, struct {
		Topic    string
		Audience types.AudienceLevel
	}{Topic: topic, Audience: audience})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
