package filesystem

import (
	"context"
	"fmt"

	"tuinotes/internal/config"
	"tuinotes/internal/domain"
)

// MarkdownExporter implements ports.Exporter by writing a Markdown file
type MarkdownExporter struct {
	path string
}

// NewMarkdownExporter creates an exporter writing to path. A leading ~ is
// expanded to the home directory.
func NewMarkdownExporter(path string) *MarkdownExporter {
	if path == "" {
		path = config.DefaultExportPath
	}
	return &MarkdownExporter{path: config.ExpandHome(path)}
}

// Path returns the export destination
func (e *MarkdownExporter) Path() string {
	return e.path
}

// Export renders notes and writes them atomically, returning the path written
func (e *MarkdownExporter) Export(ctx context.Context, notes []domain.Note) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	doc := domain.RenderMarkdown(notes)
	if err := writeFileAtomic(e.path, []byte(doc), 0644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return e.path, nil
}
