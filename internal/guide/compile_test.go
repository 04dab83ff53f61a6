package guide

import (
	"strings"
	"testing"

	"github.com/pdiddy/guide-creator/pkg/types"
)

func TestCompile(t *testing.T) {
	outline := &types.GuideOutline{
		Title:        "Learning Chess",
		Introduction: "Chess rewards patience.",
		Sections: []types.Section{
			{Title: "The Board"},
			{Title: "The Pieces"},
		},
		Conclusion: "Keep playing.",
	}
	sections := map[string]string{
		"The Pieces": "## The Pieces\n\nSix kinds of piece.",
		"The Board":  "## The Board\n\nSixty-four squares.",
	}

	got := Compile(outline, sections)

	want := "# Learning Chess\n\n" +
		"## Introduction\n\nChess rewards patience.\n\n" +
		"## The Board\n\nSixty-four squares.\n\n" +
		"## The Pieces\n\nSix kinds of piece.\n\n" +
		"## Conclusion\n\nKeep playing.\n\n"
	if got != want {
		t.Errorf("Compile() =\n%q\nwant\n%q", got, want)
	}

	// Sections must appear in outline order, not map order.
	board := strings.Index(got, "Sixty-four")
	pieces := strings.Index(got, "Six kinds")
	if board < 0 || pieces < 0 || board > pieces {
		t.Errorf("sections out of order: board at %d, pieces at %d", board, pieces)
	}
}

func TestPreviousSectionsText(t *testing.T) {
	if got := previousSectionsText(nil, nil); got != "No previous sections written yet." {
		t.Errorf("empty sentinel = %q", got)
	}

	sections := map[string]string{
		"The Board":  "## The Board\n\nSquares.",
		"The Pieces": "## The Pieces\n\nPieces.",
	}
	got := previousSectionsText([]string{"The Board", "The Pieces"}, sections)

	if !strings.HasPrefix(got, "# Previously Written Sections\n\n") {
		t.Errorf("missing shared heading: %q", got)
	}
	want := "# Previously Written Sections\n\n" +
		"## The Board\n\n## The Board\n\nSquares.\n\n" +
		"## The Pieces\n\n## The Pieces\n\nPieces.\n\n"
	if got != want {
		t.Errorf("previousSectionsText() =\n%q\nwant\n%q", got, want)
	}
}
