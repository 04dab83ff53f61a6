// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package crew defines the writer/reviewer agent roles and runs their
// tasks sequentially against the language model.
package crew

import (
	"fmt"
	"strings"
)

// Agent describes a role the model plays while executing a task.
type Agent struct {
	// Name identifies the agent (e.g. "content_writer").
	Name string `json:"name" yaml:"name"`

	// Role is the one-line job title interpolated into the system message.
	Role string `json:"role" yaml:"role"`

	// Goal states what the agent optimizes for.
	Goal string `json:"goal" yaml:"goal"`

	// Backstory gives the model persona context.
	Backstory string `json:"backstory" yaml:"backstory"`
}

// Task describes one unit of work assigned to an agent.
type Task struct {
	// Name identifies the task (e.g. "write_section").
	Name string `json:"name" yaml:"name"`

	// Description is a text/template body interpolated with the task inputs.
	Description string `json:"description" yaml:"description"`

	// ExpectedOutput tells the model what shape of answer to produce.
	ExpectedOutput string `json:"expected_output" yaml:"expected_output"`

	// Agent is the name of the agent that runs this task.
	Agent string `json:"agent" yaml:"agent"`
}

// Definition is a full crew: its agents and the ordered tasks they run.
type Definition struct {
	Agents []Agent `json:"agents" yaml:"agents"`
	Tasks  []Task  `json:"tasks" yaml:"tasks"`
}

// Normalized returns a copy with surrounding whitespace trimmed from every
// identifier and template field.
func (d Definition) Normalized() Definition {
	clone := Definition{
		Agents: make([]Agent, len(d.Agents)),
		Tasks:  make([]Task, len(d.Tasks)),
	}
	for i, a := range d.Agents {
		clone.Agents[i] = Agent{
			Name:      strings.TrimSpace(a.Name),
			Role:      strings.TrimSpace(a.Role),
			Goal:      strings.TrimSpace(a.Goal),
			Backstory: strings.TrimSpace(a.Backstory),
		}
	}
	for i, t := range d.Tasks {
		clone.Tasks[i] = Task{
			Name:           strings.TrimSpace(t.Name),
			Description:    strings.TrimSpace(t.Description),
			ExpectedOutput: strings.TrimSpace(t.ExpectedOutput),
			Agent:          strings.TrimSpace(t.Agent),
		}
	}
	return clone
}

// Validate ensures the definition is well-formed: every agent named, every
// task named and bound to a known agent, at least one task present.
func (d Definition) Validate() error {
	n := d.Normalized()

	if len(n.Tasks) == 0 {
		return fmt.Errorf("crew: at least one task is required")
	}

	agents := make(map[string]bool, len(n.Agents))
	for i, a := range n.Agents {
		if a.Name == "" {
			return fmt.Errorf("crew: agent %d has no name", i+1)
		}
		if agents[a.Name] {
			return fmt.Errorf("crew: duplicate agent %q", a.Name)
		}
		if a.Role == "" {
			return fmt.Errorf("crew: agent %q has no role", a.Name)
		}
		agents[a.Name] = true
	}

	seen := make(map[string]bool, len(n.Tasks))
	for i, t := range n.Tasks {
		if t.Name == "" {
			return fmt.Errorf("crew: task %d has no name", i+1)
		}
		if seen[t.Name] {
			return fmt.Errorf("crew: duplicate task %q", t.Name)
		}
		seen[t.Name] = true
		if t.Description == "" {
			return fmt.Errorf("crew: task %q has no description", t.Name)
		}
		if t.Agent == "" {
			return fmt.Errorf("crew: task %q names no agent", t.Name)
		}
		if !agents[t.Agent] {
			return fmt.Errorf("crew: task %q references unknown agent %q", t.Name, t.Agent)
		}
	}
	return nil
}

// AgentByName returns the named agent.
func (d Definition) AgentByName(name string) (Agent, bool) {
	for _, a := range d.Agents {
		if a.Name == name {
			return a, true
		}
	}
	return Agent{}, false
}
