package publish

import (
	"context"
	"os"
	"path/filepath"

	ferrors "github.com/vango-dev/forms/internal/errors"
)

// DirPublisher writes snapshots into a local directory.
type DirPublisher struct {
	dir string
}

// NewDirPublisher creates a publisher writing to dir, creating it if needed.
func NewDirPublisher(dir string) (*DirPublisher, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &DirPublisher{dir: dir}, nil
}

// Publish writes html to dir/name.html and returns the path.
// The file is replaced atomically.
func (p *DirPublisher) Publish(ctx context.Context, name string, html []byte) (string, error) {
	if !ValidName(name) {
		return "", ErrInvalidName
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := filepath.Join(p.dir, name+".html")
	tmp, err := os.CreateTemp(p.dir, ".snapshot-*")
	if err != nil {
		return "", ferrors.New("F070").WithDetail(path).Wrap(err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(html); err != nil {
		tmp.Close()
		return "", ferrors.New("F070").WithDetail(path).Wrap(err)
	}
	if err := tmp.Close(); err != nil {
		return "", ferrors.New("F070").WithDetail(path).Wrap(err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return "", ferrors.New("F070").WithDetail(path).Wrap(err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", ferrors.New("F070").WithDetail(path).Wrap(err)
	}
	return path, nil
}
