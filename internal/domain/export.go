package domain

import "strings"

// ExportHeading is the first line of a Markdown export
const ExportHeading = "# TUI Notes Export"

// RenderMarkdown renders notes as a Markdown document, one level-2 heading
// per note followed by its content
func RenderMarkdown(notes []Note) string {
	lines := []string{ExportHeading + "\n"}
	for _, n := range notes {
		lines = append(lines, "## "+n.Title+"\n")
		if n.Content != "" {
			lines = append(lines, n.Content+"\n")
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// RenderNote renders a single note the way it appears in an export
func RenderNote(n Note) string {
	var b strings.Builder
	b.WriteString("## ")
	b.WriteString(n.Title)
	b.WriteString("\n")
	if n.Content != "" {
		b.WriteString("\n")
		b.WriteString(n.Content)
		b.WriteString("\n")
	}
	return b.String()
}
