// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package crew

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"
)

// LoadFile reads and validates one self-contained crew definition file.
func LoadFile(path string) (Definition, error) {
	def, err := parseFile(path)
	if err != nil {
		return Definition{}, err
	}
	if err := def.Validate(); err != nil {
		return Definition{}, fmt.Errorf("%s: %w", path, err)
	}
	return def.Normalized(), nil
}

// parseFile decodes a crew YAML file without validating it. Validation
// happens after merging so tasks may reference agents from sibling files.
func parseFile(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("reading crew file %s: %w", path, err)
	}
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return Definition{}, fmt.Errorf("parsing crew file %s: %w", path, err)
	}
	return def, nil
}

// LoadDir merges every *.yaml crew file in dir, in filename order. A missing
// or empty directory returns the built-in default crew so a fresh checkout
// works without any setup.
func LoadDir(dir string) (Definition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultDefinition(), nil
		}
		return Definition{}, fmt.Errorf("reading crew directory %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		lower := strings.ToLower(e.Name())
		if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return DefaultDefinition(), nil
	}
	sort.Strings(names)

	var merged Definition
	for _, name := range names {
		def, err := parseFile(filepath.Join(dir, name))
		if err != nil {
			return Definition{}, err
		}
		merged.Agents = append(merged.Agents, def.Agents...)
		merged.Tasks = append(merged.Tasks, def.Tasks...)
	}
	if err := merged.Validate(); err != nil {
		return Definition{}, err
	}
	return merged.Normalized(), nil
}

// DefaultDefinition is the content crew used when no YAML overrides exist:
// a writer drafts each section, a reviewer tightens it for the audience.
func DefaultDefinition() Definition {
	return Definition{
		Agents: []Agent{
			{
				Name:      "content_writer",
				Role:      "Educational Content Writer",
				Goal:      "Create engaging, informative content that thoroughly explains the assigned topic and provides valuable insights to the reader.",
				Backstory: "You are a talented educational writer with expertise in creating clear, engaging content. You have a gift for explaining complex concepts in accessible ways and structuring information to build on the reader's existing knowledge.",
			},
			{
				Name:      "content_reviewer",
				Role:      "Educational Content Reviewer and Editor",
				Goal:      "Ensure content is accurate, comprehensive, well-structured, and maintains consistency with previously written sections.",
				Backstory: "You are a meticulous editor with years of experience reviewing educational content. You have an eye for detail, clarity, and coherence, and you excel at improving content while preserving the original author's voice and ensuring consistent quality across sections.",
			},
		},
		Tasks: []Task{
			{
				Name:  "write_section",
				Agent: "content_writer",
				Description: `Write a comprehensive section on the topic: "{{.section_title}}"

Section description: {{.section_description}}
Target audience: {{.audience_level}} level learners

Your content should:
1. Begin with a brief introduction to the section topic
2. Explain all key concepts clearly with examples
3. Include practical applications or exercises where appropriate
4. End with a summary of key points
5. Be approximately 500-800 words in length

Format your content in Markdown with appropriate headings, lists, and emphasis.

Previously written sections:
{{.previous_sections}}

Make sure your content maintains consistency with previously written sections and builds upon concepts that have already been explained.`,
				ExpectedOutput: "A well-structured, comprehensive section in Markdown format that thoroughly explains the topic and is appropriate for the target audience.",
			},
			{
				Name:  "review_section",
				Agent: "content_reviewer",
				Description: `Review and improve the following section on "{{.section_title}}":

{{.draft_content}}

Target audience: {{.audience_level}} level learners

Previously written sections:
{{.previous_sections}}

Your review should:
1. Fix any grammatical or spelling errors
2. Improve clarity and readability
3. Ensure content is comprehensive and accurate
4. Verify consistency with previously written sections
5. Enhance the structure and flow
6. Add any missing key information

Provide the improved version of the section in Markdown format.`,
				ExpectedOutput: "An improved, polished version of the section that maintains the original structure but enhances clarity, accuracy, and consistency.",
			},
		},
	}
}
