package domain

import "testing"

func TestRenderMarkdown(t *testing.T) {
	notes := []Note{
		{Title: "Groceries", Content: "milk", Position: 0},
		{Title: "Empty", Position: 4},
	}

	got := RenderMarkdown(notes)
	want := "# TUI Notes Export\n\n## Groceries\n\nmilk\n\n\n## Empty\n\n"
	if got != want {
		t.Errorf("RenderMarkdown() =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderMarkdown_NoNotes(t *testing.T) {
	if got := RenderMarkdown(nil); got != "# TUI Notes Export\n" {
		t.Errorf("unexpected output for no notes: %q", got)
	}
}
