package skills

import (
	"context"
	"os"
	"path/filepath"
)

// FS is the filesystem capability discovery runs against. OSFS serves the
// process filesystem directly; tests and remote-workspace integrations
// substitute their own. Implementations decide how each call is scheduled
// and may honor ctx cancellation mid-operation; discovery itself never
// retries a failed call.
type FS interface {
	// IsDir reports whether path exists and is a directory.
	IsDir(ctx context.Context, path string) bool
	// IsFile reports whether path exists and is a regular file.
	IsFile(ctx context.Context, path string) bool
	// ReadDir returns the immediate children of path as full paths, as a
	// finite snapshot taken at call time.
	ReadDir(ctx context.Context, path string) ([]string, error)
	// Load reads the file at path as text.
	Load(ctx context.Context, path string) (string, error)
}

// OSFS implements FS over the process filesystem. All calls execute
// synchronously on the calling goroutine.
type OSFS struct{}

func (OSFS) IsDir(_ context.Context, path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (OSFS) IsFile(_ context.Context, path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func (OSFS) ReadDir(_ context.Context, path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	children := make([]string, 0, len(entries))
	for _, entry := range entries {
		children = append(children, filepath.Join(path, entry.Name()))
	}
	return children, nil
}

func (OSFS) Load(_ context.Context, path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(content), nil
}
