package upload

import (
	"context"
	"errors"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/VinukaThejana/immerzo/models"
)

// Local writes uploads to a directory on the local disk
type Local struct {
	Dir          string
	PublicPrefix string
	Now          func() time.Time
}

// NewLocal creates a local storage rooted at dir, files are served under publicPrefix
func NewLocal(dir, publicPrefix string) *Local {
	return &Local{
		Dir:          dir,
		PublicPrefix: publicPrefix,
		Now:          time.Now,
	}
}

// Save writes the data to the upload directory, an existing file is never overwritten
func (l *Local) Save(ctx context.Context, originalName string, data []byte) (*models.Floorplan, error) {
	now := l.Now()
	name, err := storedName(now, originalName)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(l.Dir, 0o755); err != nil {
		return nil, ioErr(err)
	}

	file, err := os.OpenFile(filepath.Join(l.Dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, os.ErrExist) {
		name = uniqueName(now, originalName)
		file, err = os.OpenFile(filepath.Join(l.Dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	}
	if err != nil {
		return nil, ioErr(err)
	}

	n, err := file.Write(data)
	if err != nil {
		file.Close()
		return nil, ioErr(err)
	}
	if err := file.Close(); err != nil {
		return nil, ioErr(err)
	}

	return &models.Floorplan{
		Filename: name,
		Path:     path.Join(l.PublicPrefix, name),
		Size:     int64(n),
	}, nil
}
