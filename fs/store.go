package fs

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/fwojciec/narrator"
)

// Ensure TranscriptStore implements narrator.TranscriptStore at compile time.
var _ narrator.TranscriptStore = (*TranscriptStore)(nil)

// TranscriptStore writes transcripts with atomic update semantics.
// Transcripts are saved to a temporary directory, then moved atomically on
// Commit. Save is safe for concurrent use.
type TranscriptStore struct {
	baseDir string
	name    string
	format  Format

	mu    sync.Mutex
	taken map[string]bool
}

// NewTranscriptStore creates a new TranscriptStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewTranscriptStore(baseDir, name string, format Format) *TranscriptStore {
	return &TranscriptStore{
		baseDir: baseDir,
		name:    name,
		format:  format,
		taken:   make(map[string]bool),
	}
}

func (s *TranscriptStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

// Dir returns the directory transcripts end up in after Commit.
func (s *TranscriptStore) Dir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save encodes t into the temporary directory. Transcripts whose names
// collide get a numeric suffix.
func (s *TranscriptStore) Save(ctx context.Context, t *narrator.Transcript) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := t.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, t, s.format); err != nil {
		return err
	}

	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}
	path := filepath.Join(s.tempDir(), s.reserve(TranscriptName(t.Metadata, t.Source)))
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// reserve returns a file name for stem that no earlier Save used.
func (s *TranscriptStore) reserve(stem string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	name := stem + s.format.Ext()
	for i := 2; s.taken[name]; i++ {
		name = stem + " (" + strconv.Itoa(i) + ")" + s.format.Ext()
	}
	s.taken[name] = true
	return name
}

// Commit replaces the output directory with the saved transcripts.
func (s *TranscriptStore) Commit() error {
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	// Remove existing final directory if present
	if err := os.RemoveAll(s.Dir()); err != nil {
		return err
	}

	return os.Rename(s.tempDir(), s.Dir())
}

// Abort discards the saved transcripts.
func (s *TranscriptStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
