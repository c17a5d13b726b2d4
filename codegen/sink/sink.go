// Package sink provides the destinations generated source files are written to.
package sink

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/broady/discogen"
)

// OutputSink receives generated files.
// Implementations must be safe for concurrent calls.
type OutputSink interface {
	// WriteFile stores content under path. The path is relative and
	// slash-separated; the sink decides where it ends up.
	WriteFile(ctx context.Context, path string, content []byte) error
}

// FilesystemSink writes files below a root directory.
type FilesystemSink struct {
	// Root is the base directory for all writes.
	Root string

	// Mode is the file permission mode (default: 0644).
	Mode os.FileMode

	// Overwrite replaces existing files. When false, writing a path that
	// already exists fails with CodeAlreadyExists.
	Overwrite bool
}

// NewFilesystemSink returns a sink writing below root, overwriting existing files.
func NewFilesystemSink(root string) *FilesystemSink {
	return &FilesystemSink{
		Root:      root,
		Mode:      0644,
		Overwrite: true,
	}
}

// WriteFile writes content to path below Root.
// Parent directories are created as needed. The file is written to a
// temporary sibling and renamed into place, so readers never observe a
// partially generated source file.
func (s *FilesystemSink) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	fullPath := filepath.Join(s.Root, filepath.FromSlash(path))
	absRoot, err := filepath.Abs(s.Root)
	if err != nil {
		return fmt.Errorf("resolve root directory: %w", err)
	}
	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if !strings.HasPrefix(absPath, absRoot+string(filepath.Separator)) {
		return discogen.Errorf(discogen.CodeInvalidArgument, "path %q escapes the output directory", path)
	}

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	mode := s.Mode
	if mode == 0 {
		mode = 0644
	}

	tmp, err := os.CreateTemp(dir, ".discogen-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	// Leftover temp files carry the .discogen- prefix; removal is best effort.
	cleanup := func() { _ = os.Remove(tmpPath) }

	_, writeErr := tmp.Write(content)
	closeErr := tmp.Close()
	switch {
	case writeErr != nil:
		cleanup()
		return fmt.Errorf("write %s: %w", path, writeErr)
	case closeErr != nil:
		cleanup()
		return fmt.Errorf("close %s: %w", path, closeErr)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		cleanup()
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := ctx.Err(); err != nil {
		cleanup()
		return err
	}

	if s.Overwrite {
		if err := os.Rename(tmpPath, fullPath); err != nil {
			cleanup()
			return fmt.Errorf("rename %s: %w", path, err)
		}
		return nil
	}

	// Link fails atomically when the target exists.
	err = os.Link(tmpPath, fullPath)
	cleanup()
	if errors.Is(err, os.ErrExist) {
		return discogen.Errorf(discogen.CodeAlreadyExists, "file %q already exists", path).WithDetail("path", path)
	}
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	return nil
}

// MemorySink keeps generated files in memory. It is safe for concurrent use.
type MemorySink struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemorySink returns an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{files: make(map[string][]byte)}
}

// WriteFile stores a copy of content under path.
func (s *MemorySink) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = slices.Clone(content)
	return nil
}

// Get returns a copy of the file at path, or nil.
func (s *MemorySink) Get(path string) []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.files[path])
}

// Paths returns the stored paths in sorted order.
func (s *MemorySink) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	paths := make([]string, 0, len(s.files))
	for path := range s.files {
		paths = append(paths, path)
	}
	slices.Sort(paths)
	return paths
}

// Files returns a copy of every stored file.
func (s *MemorySink) Files() map[string][]byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	files := make(map[string][]byte, len(s.files))
	for path, content := range s.files {
		files[path] = slices.Clone(content)
	}
	return files
}

// Reset removes every stored file.
func (s *MemorySink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.files)
}

// ValidatePath reports whether path is an acceptable output path: relative,
// slash-separated, clean, and free of ".." elements. Failures carry
// CodeInvalidArgument.
func ValidatePath(path string) error {
	invalid := func(reason string) error {
		return discogen.Errorf(discogen.CodeInvalidArgument, "invalid output path %q: %s", path, reason)
	}
	if path == "" {
		return invalid("path is empty")
	}
	if filepath.IsAbs(path) || strings.HasPrefix(path, "/") || isDriveLetter(path) {
		return invalid("absolute paths not allowed")
	}
	if strings.Contains(path, `\`) {
		return invalid("use / as the separator")
	}
	for _, elem := range strings.Split(path, "/") {
		if elem == ".." {
			return invalid("path traversal not allowed")
		}
	}
	if cleaned := filepath.ToSlash(filepath.Clean(path)); cleaned != path {
		return invalid(fmt.Sprintf("path is not clean (expected %q)", cleaned))
	}
	return nil
}

func isDriveLetter(path string) bool {
	if len(path) < 2 || path[1] != ':' {
		return false
	}
	c := path[0]
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
