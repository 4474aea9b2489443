// internal/buffer/buffer.go
package buffer

import "context"

// Buffer defines the interface for a loaded sentence set and its export target.
type Buffer interface {
	Load(filePath string) error
	Sentences() []string
	Sentence(index int) (string, error)
	Count() int
	FilePath() string
	Export(ctx context.Context, path string, content string) error
	ExportPath() string
}
