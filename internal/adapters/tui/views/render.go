package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"tuinotes/internal/adapters/tui/styles"
	"tuinotes/internal/domain"
)

// RenderKeyHelp formats a key binding as help text (key + description)
func RenderKeyHelp(b key.Binding) string {
	help := b.Help()
	return fmt.Sprintf("%s %s",
		styles.HelpKey.Render(help.Key),
		styles.HelpDesc.Render(help.Desc),
	)
}

// RenderHelpLine renders multiple key bindings as a help line separated by bullets
func RenderHelpLine(bindings ...key.Binding) string {
	var parts []string
	for _, b := range bindings {
		parts = append(parts, RenderKeyHelp(b))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderMessage renders a status message styled by level
func RenderMessage(message string, level MessageLevel) string {
	if message == "" {
		return ""
	}
	switch level {
	case LevelError:
		return styles.ErrorMsg.Render(message)
	case LevelWarning:
		return styles.WarningMsg.Render(message)
	default:
		return styles.Success.Render(message)
	}
}

// CardState describes how a grid cell is highlighted
type CardState struct {
	Focused    bool
	Moving     bool
	DropTarget bool
}

// RenderCard renders one grid cell of exactly width x height cells.
// A nil note renders an empty slot.
func RenderCard(note *domain.Note, slot, width, height int, state CardState) string {
	inner := width - 2
	if inner < 1 {
		inner = 1
	}
	innerH := height - 2
	if innerH < 1 {
		innerH = 1
	}

	if note == nil {
		style := styles.EmptySlot.Width(inner).Height(innerH).MaxHeight(height)
		if state.Focused || state.DropTarget {
			edge := styles.Focused
			if state.DropTarget {
				edge = styles.DropTarget
			}
			style = style.Border(lipgloss.RoundedBorder()).BorderForeground(edge)
		}
		return style.Render(fmt.Sprintf("+ slot %d", slot+1))
	}

	style := styles.Card.
		Width(inner).
		Height(innerH).
		MaxHeight(height).
		Background(styles.NoteColor(note.ColorIndex)).
		BorderForeground(styles.NoteColor(note.ColorIndex))

	switch {
	case state.Moving:
		style = style.BorderForeground(styles.MovingEdge).BorderStyle(lipgloss.DoubleBorder())
	case state.DropTarget:
		style = style.BorderForeground(styles.DropTarget)
	case state.Focused:
		style = style.BorderForeground(styles.Focused).BorderStyle(lipgloss.ThickBorder())
	}

	// Padding takes two columns of the inner width
	textWidth := inner - 2
	if textWidth < 1 {
		textWidth = 1
	}
	lines := []string{styles.CardTitle.Render(truncate(note.Title, textWidth))}
	if note.Content != "" {
		lines = append(lines, "")
		for _, l := range strings.Split(note.Content, "\n") {
			if len(lines) >= innerH {
				break
			}
			lines = append(lines, truncate(l, textWidth))
		}
	}
	return style.Render(strings.Join(lines, "\n"))
}

// truncate shortens s to at most width display cells
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
