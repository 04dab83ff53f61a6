package types

import (
	"strings"
	"testing"
)

func TestParseAudienceLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    AudienceLevel
		wantErr bool
	}{
		{"beginner", AudienceBeginner, false},
		{"intermediate", AudienceIntermediate, false},
		{"advanced", AudienceAdvanced, false},
		{"expert", "", true},
		{"Beginner", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseAudienceLevel(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseAudienceLevel(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAudienceLevel(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAudienceLevel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGuideOutlineValidate(t *testing.T) {
	valid := func() *GuideOutline {
		return &GuideOutline{
			Title:        "A Guide",
			Introduction: "Intro.",
			Sections: []Section{
				{Title: "One", Description: "First."},
				{Title: "Two", Description: "Second."},
			},
			Conclusion: "Done.",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*GuideOutline)
		wantErr string
	}{
		{"valid", func(o *GuideOutline) {}, ""},
		{"missing title", func(o *GuideOutline) { o.Title = "" }, "no title"},
		{"no sections", func(o *GuideOutline) { o.Sections = nil }, "no sections"},
		{"untitled section", func(o *GuideOutline) { o.Sections[1].Title = "" }, "section 2"},
		{"empty introduction allowed", func(o *GuideOutline) { o.Introduction = "" }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := valid()
			tt.mutate(o)
			err := o.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate(): %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}
