// internal/buffer/sentence_buffer.go
package buffer

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"

	"github.com/bethropolis/mathtag/internal/logger"
)

// lockRetryDelay is how often a blocked export retries the lock.
const lockRetryDelay = 100 * time.Millisecond

var _ Buffer = (*SentenceBuffer)(nil)

// SentenceBuffer holds the sentences read from one text file.
type SentenceBuffer struct {
	sentences  []string
	filePath   string
	exportPath string
	markedOnly bool
}

// NewSentenceBuffer creates an empty buffer. With markedOnly, Load keeps only sentences
// containing an open marker.
func NewSentenceBuffer(markedOnly bool) *SentenceBuffer {
	return &SentenceBuffer{markedOnly: markedOnly}
}

// Load reads and splits a file. "-" reads standard input. Replaces existing content.
func (sb *SentenceBuffer) Load(filePath string) error {
	if filePath == "-" {
		return sb.LoadReader(os.Stdin, filePath)
	}
	f, err := os.Open(filePath)
	if err != nil {
		return errors.Wrapf(err, "failed to open %q", filePath)
	}
	defer f.Close()
	return sb.LoadReader(f, filePath)
}

// LoadReader reads and splits everything from r. name is recorded as the file path.
func (sb *SentenceBuffer) LoadReader(r io.Reader, name string) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrapf(err, "error reading %q", name)
	}

	sentences := SplitSentences(NormalizeText(string(raw)))
	if sb.markedOnly {
		sentences = FilterMarked(sentences)
	}

	sb.sentences = sentences
	sb.filePath = name
	logger.Infof("Buffer: Loaded %d sentence(s) from %q (marked only: %v)", len(sentences), name, sb.markedOnly)
	return nil
}

// Sentences returns a copy of the loaded sentences.
func (sb *SentenceBuffer) Sentences() []string {
	return append([]string(nil), sb.sentences...)
}

// Sentence returns one sentence by index.
func (sb *SentenceBuffer) Sentence(index int) (string, error) {
	if index < 0 || index >= len(sb.sentences) {
		return "", errors.Errorf("sentence index %d out of bounds (0-%d)", index, len(sb.sentences)-1)
	}
	return sb.sentences[index], nil
}

// Count returns the number of sentences.
func (sb *SentenceBuffer) Count() int {
	return len(sb.sentences)
}

// FilePath returns the path the sentences were loaded from.
func (sb *SentenceBuffer) FilePath() string {
	return sb.filePath
}

// SetExportPath sets the default export destination.
func (sb *SentenceBuffer) SetExportPath(path string) {
	sb.exportPath = path
}

// ExportPath returns the last export destination or the configured default.
func (sb *SentenceBuffer) ExportPath() string {
	return sb.exportPath
}

// Export writes content to path, or to the export path when path is empty, holding an
// exclusive lock on path+".lock" for the duration of the write. The content always ends
// in a newline unless it is empty.
func (sb *SentenceBuffer) Export(ctx context.Context, path string, content string) error {
	if path == "" {
		path = sb.exportPath
	}
	if path == "" {
		return errors.New("no file path specified for export")
	}
	if content != "" && content[len(content)-1] != '\n' {
		content += "\n"
	}

	err := withFileLock(ctx, path+".lock", func() error {
		return writeFileAtomic(path, []byte(content))
	})
	if err != nil {
		return errors.WithMessagef(err, "export to %q", path)
	}

	sb.exportPath = path
	logger.Infof("Buffer: Exported %d bytes to %q", len(content), path)
	return nil
}

// withFileLock runs fn while holding an exclusive lock on lockPath.
func withFileLock(ctx context.Context, lockPath string, fn func() error) (err error) {
	fileLock := flock.New(lockPath)
	locked, err := fileLock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return errors.Wrapf(err, "while trying to lock %q", lockPath)
	}
	if !locked {
		return errors.Errorf("could not lock %q", lockPath)
	}

	defer func() {
		unlockErr := fileLock.Unlock()
		if unlockErr != nil && err == nil {
			err = errors.Wrapf(unlockErr, "unlocking %q", lockPath)
		}
	}()
	return fn()
}

// writeFileAtomic writes to a temporary file in the same directory and renames it over path.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrap(err, "create temporary file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "write temporary file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close temporary file")
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return errors.Wrap(err, "chmod temporary file")
	}
	return errors.Wrapf(os.Rename(tmp.Name(), path), "rename to %q", path)
}
