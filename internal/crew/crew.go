// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package crew

import (
	"bytes"
	"context"
	"fmt"
	"text/template"

	"github.com/pdiddy/guide-creator/internal/llm"
)

// Inputs are the values interpolated into task description templates.
type Inputs map[string]string

// Crew runs a definition's tasks in order against a language model. Each
// task's output is fed to the next task as the "draft_content" input, so a
// write task followed by a review task behaves as draft-then-polish.
type Crew struct {
	def        Definition
	client     llm.Client
	maxRetries int
}

// New builds a Crew. The definition must already be validated.
func New(def Definition, client llm.Client, maxRetries int) *Crew {
	return &Crew{def: def, client: client, maxRetries: maxRetries}
}

// Kickoff executes every task sequentially and returns the last task's
// output.
func (c *Crew) Kickoff(ctx context.Context, inputs Inputs) (string, error) {
	merged := make(Inputs, len(inputs)+1)
	for k, v := range inputs {
		merged[k] = v
	}
	if _, ok := merged["draft_content"]; !ok {
		merged["draft_content"] = ""
	}

	var output string
	for _, task := range c.def.Tasks {
		agent, ok := c.def.AgentByName(task.Agent)
		if !ok {
			return "", fmt.Errorf("task %q: unknown agent %q", task.Name, task.Agent)
		}

		user, err := renderTask(task, merged)
		if err != nil {
			return "", fmt.Errorf("task %q: %w", task.Name, err)
		}

		resp, err := llm.CompleteWithRetry(ctx, c.client, llm.Request{
			System: systemMessage(agent),
			User:   user,
		}, c.maxRetries)
		if err != nil {
			return "", fmt.Errorf("task %q: %w", task.Name, err)
		}

		output = resp.Text
		merged["draft_content"] = output
	}
	return output, nil
}

// systemMessage assembles the agent persona into a system prompt.
func systemMessage(a Agent) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "You are %s.", a.Role)
	if a.Goal != "" {
		fmt.Fprintf(&b, "\n\nYour goal: %s", a.Goal)
	}
	if a.Backstory != "" {
		fmt.Fprintf(&b, "\n\nBackground: %s", a.Backstory)
	}
	return b.String()
}

// renderTask interpolates inputs into the task description and appends the
// expected output instruction.
func renderTask(task Task, inputs Inputs) (string, error) {
	tmpl, err := template.New(task.Name).Option("missingkey=error").Parse(task.Description)
	if err != nil {
		return "", fmt.Errorf("parsing description template: %w", err)
	}

	data := make(map[string]string, len(inputs))
	for k, v := range inputs {
		data[k] = v
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering description: %w", err)
	}

	if task.ExpectedOutput != "" {
		fmt.Fprintf(&buf, "\n\nExpected output: %s", task.ExpectedOutput)
	}
	return buf.String(), nil
}
