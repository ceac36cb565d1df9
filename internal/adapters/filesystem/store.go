package filesystem

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/cast"

	"tuinotes/internal/domain"
)

// FormatVersion is written into every saved document
const FormatVersion = "1.0"

type document struct {
	Version string          `json:"version"`
	PostIts []domain.Record `json:"post_its"`
}

// Store implements ports.NoteStore as a single JSON file
type Store struct {
	path   string
	logger *slog.Logger

	mu     sync.Mutex
	digest uint64
	known  bool
}

// NewStore creates a store backed by the file at path. The file and its
// directory are created on first save.
func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{path: path, logger: logger}
}

// Path returns the notes file location
func (s *Store) Path() string {
	return s.path
}

// Save writes records atomically
func (s *Store) Save(ctx context.Context, records []domain.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if records == nil {
		records = []domain.Record{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(document{Version: FormatVersion, PostIts: records}); err != nil {
		return fmt.Errorf("failed to encode notes: %w", err)
	}
	data := bytes.TrimRight(buf.Bytes(), "\n")

	if err := writeFileAtomic(s.path, data, 0644); err != nil {
		return err
	}
	s.remember(data)
	return nil
}

// Load reads the stored records. A missing, unreadable or malformed file
// yields no records; malformed entries are dropped one by one.
func (s *Store) Load(ctx context.Context) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("cannot read notes file", "path", s.path, "err", err)
		}
		s.forget()
		return []domain.Record{}, nil
	}
	s.remember(data)

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		s.logger.Warn("notes file is not valid JSON", "path", s.path, "err", err)
		return []domain.Record{}, nil
	}
	items, ok := raw["post_its"].([]any)
	if !ok {
		s.logger.Warn("notes file has no post_its list", "path", s.path)
		return []domain.Record{}, nil
	}

	records := make([]domain.Record, 0, len(items))
	for i, item := range items {
		r, err := decodeRecord(item)
		if err != nil {
			s.logger.Warn("dropping stored note", "index", i, "err", err)
			continue
		}
		records = append(records, r)
	}
	return records, nil
}

// Stale reports whether the file on disk differs from what this store last
// wrote or read
func (s *Store) Stale() bool {
	data, err := os.ReadFile(s.path)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		return s.known
	}
	return !s.known || xxhash.Sum64(data) != s.digest
}

func (s *Store) remember(data []byte) {
	s.mu.Lock()
	s.digest = xxhash.Sum64(data)
	s.known = true
	s.mu.Unlock()
}

func (s *Store) forget() {
	s.mu.Lock()
	s.known = false
	s.mu.Unlock()
}

func decodeRecord(item any) (domain.Record, error) {
	m, ok := item.(map[string]any)
	if !ok {
		return domain.Record{}, fmt.Errorf("expected object, got %T", item)
	}

	rawPos, ok := m["position"]
	if !ok {
		return domain.Record{}, errors.New("missing position")
	}
	rawTitle, ok := m["title"]
	if !ok {
		return domain.Record{}, errors.New("missing title")
	}

	pos, err := cast.ToIntE(rawPos)
	if err != nil {
		return domain.Record{}, fmt.Errorf("position: %w", err)
	}
	title, err := cast.ToStringE(rawTitle)
	if err != nil {
		return domain.Record{}, fmt.Errorf("title: %w", err)
	}

	r := domain.Record{Position: pos, Title: title}
	if c, ok := m["content"]; ok {
		if r.Content, err = cast.ToStringE(c); err != nil {
			return domain.Record{}, fmt.Errorf("content: %w", err)
		}
	}
	if c, ok := m["color_index"]; ok {
		if idx, err := cast.ToIntE(c); err == nil && domain.ValidColor(idx) {
			r.ColorIndex = &idx
		}
	}
	return r, nil
}
