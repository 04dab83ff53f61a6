// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data records and stage configuration
// for the guide-creator pipeline.
package types

import "fmt"

// AudienceLevel classifies the target readership of a guide.
type AudienceLevel string

const (
	AudienceBeginner     AudienceLevel = "beginner"
	AudienceIntermediate AudienceLevel = "intermediate"
	AudienceAdvanced     AudienceLevel = "advanced"
)

// Valid reports whether the level is one of the accepted values.
func (a AudienceLevel) Valid() bool {
	switch a {
	case AudienceBeginner, AudienceIntermediate, AudienceAdvanced:
		return true
	}
	return false
}

// ParseAudienceLevel converts a user-supplied string into an AudienceLevel.
func ParseAudienceLevel(s string) (AudienceLevel, error) {
	a := AudienceLevel(s)
	if !a.Valid() {
		return "", fmt.Errorf("invalid audience level %q: use beginner, intermediate, or advanced", s)
	}
	return a, nil
}

// Section describes one section of a guide outline.
type Section struct {
	// Title is the section heading.
	Title string `json:"title" yaml:"title"`

	// Description explains what the section should cover.
	Description string `json:"description" yaml:"description"`
}

// GuideOutline is the structured outline produced by the outline stage.
// It is serialized to output/guide_outline.json once and never mutated.
type GuideOutline struct {
	// Title is the guide title.
	Title string `json:"title" yaml:"title"`

	// Introduction opens the guide.
	Introduction string `json:"introduction" yaml:"introduction"`

	// TargetAudience describes who the guide is written for.
	TargetAudience string `json:"target_audience" yaml:"target_audience"`

	// Sections lists the guide's sections in order.
	Sections []Section `json:"sections" yaml:"sections"`

	// Conclusion closes the guide.
	Conclusion string `json:"conclusion" yaml:"conclusion"`
}

// Validate checks that the outline carries enough structure to write from.
func (o *GuideOutline) Validate() error {
	if o.Title == "" {
		return fmt.Errorf("outline has no title")
	}
	if len(o.Sections) == 0 {
		return fmt.Errorf("outline has no sections")
	}
	for i, s := range o.Sections {
		if s.Title == "" {
			return fmt.Errorf("section %d has no title", i+1)
		}
	}
	return nil
}
