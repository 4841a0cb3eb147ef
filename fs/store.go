// Package fs provides file-based storage for extraction results.
package fs

import (
	"context"
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/clipper"
)

// Renderer encodes a result as file content.
type Renderer func(r *clipper.ExtractionResult) ([]byte, error)

// RenderJSON encodes a result as indented JSON.
func RenderJSON(r *clipper.ExtractionResult) ([]byte, error) {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// URLToPath converts a page URL to a relative file path with the given
// extension. The host becomes the first path segment so pages from different
// sites never collide. URLs without a host, such as file URLs, map to their
// path alone. Example: https://example.com/blog/post → example.com/blog/post.json
func URLToPath(rawURL, ext string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", clipper.Errorf(clipper.EINVALID, "invalid result URL %q", rawURL)
	}

	path := strings.TrimPrefix(u.Path, "/")

	// Handle root or trailing slash → index
	if path == "" || strings.HasSuffix(path, "/") {
		path += "index"
	}

	cleaned := filepath.Clean(filepath.FromSlash(path))
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) || filepath.IsAbs(cleaned) {
		return "", clipper.Errorf(clipper.EINVALID, "path traversal in result URL %q", rawURL)
	}

	if host := hostSegment(u.Host); host != "" {
		cleaned = filepath.Join(host, cleaned)
	}

	return cleaned + ext, nil
}

// hostSegment turns a URL host into a portable directory name.
func hostSegment(host string) string {
	host = strings.ToLower(host)
	host = strings.NewReplacer(":", "_", "[", "", "]", "").Replace(host)
	if host == "." || host == ".." {
		return "_"
	}
	return host
}

// Ensure FileStore implements clipper.ResultStore at compile time.
var _ clipper.ResultStore = (*FileStore)(nil)

// FileStore implements clipper.ResultStore with atomic update semantics.
// Results are saved to a temporary directory, then moved atomically on Commit.
type FileStore struct {
	baseDir string
	name    string

	ext    string
	render Renderer
}

// Option configures a FileStore.
type Option func(*FileStore)

// WithRenderer sets the file extension and encoder used for saved results.
func WithRenderer(ext string, render Renderer) Option {
	return func(s *FileStore) {
		s.ext = ext
		s.render = render
	}
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
// Results are written as JSON unless WithRenderer is given.
func NewFileStore(baseDir, name string, opts ...Option) *FileStore {
	s := &FileStore{
		baseDir: baseDir,
		name:    name,
		ext:     ".json",
		render:  RenderJSON,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes a result into the temporary directory.
func (s *FileStore) Save(ctx context.Context, result *clipper.ExtractionResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if result == nil || result.URL == "" {
		return clipper.Errorf(clipper.EINVALID, "result URL required")
	}

	relPath, err := URLToPath(result.URL, s.ext)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), relPath)

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	content, err := s.render(result)
	if err != nil {
		return err
	}
	return os.WriteFile(fullPath, content, 0644)
}

// markerName is written into every committed directory.
const markerName = ".clipper-output"

// Commit replaces the final directory with the saved results. An existing
// final directory is replaced only when it is empty or was written by a
// previous Commit; otherwise Commit fails with ECONFLICT and leaves both
// directories untouched.
func (s *FileStore) Commit() error {
	if err := s.checkReplaceable(); err != nil {
		return err
	}

	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.tempDir(), markerName), nil, 0644); err != nil {
		return err
	}

	// Remove previous output if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	// Atomically rename temp to final
	return os.Rename(s.tempDir(), s.finalDir())
}

func (s *FileStore) checkReplaceable() error {
	dir := s.finalDir()
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}
	if _, err := os.Stat(filepath.Join(dir, markerName)); err == nil {
		return nil
	}
	return clipper.Errorf(clipper.ECONFLICT, "output directory %q is not empty and was not written by clipper", dir)
}

// Abort discards the saved results.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
