package render

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Sink receives finished pages. Paths are slash-separated and relative.
type Sink interface {
	WritePage(path string, body []byte) error
}

// DirSink writes pages as files below Root.
type DirSink struct {
	Root string
}

func (s DirSink) WritePage(path string, body []byte) error {
	full := filepath.Join(s.Root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := os.WriteFile(full, body, 0o644); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// MemorySink keeps pages in memory.
type MemorySink struct {
	mu    sync.Mutex
	pages map[string]string
	order []string
}

// NewMemorySink returns an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{pages: make(map[string]string)}
}

func (s *MemorySink) WritePage(path string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.pages[path]; !ok {
		s.order = append(s.order, path)
	}
	s.pages[path] = string(body)
	return nil
}

// Page returns the body written for path.
func (s *MemorySink) Page(path string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	body, ok := s.pages[path]
	return body, ok
}

// Paths returns the written paths in write order.
func (s *MemorySink) Paths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.order...)
}

// SortedPaths returns the written paths sorted lexically.
func (s *MemorySink) SortedPaths() []string {
	out := s.Paths()
	sort.Strings(out)
	return out
}
