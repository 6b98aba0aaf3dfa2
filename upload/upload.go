// Package upload stores uploaded floorplans
package upload

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/VinukaThejana/immerzo/models"
	"github.com/VinukaThejana/immerzo/validate"
	"github.com/google/uuid"
)

var (
	// ErrIO is returned when the file could not be persisted
	ErrIO = errors.New("upload_io_error")
	// ErrInvalidFilename is returned when the original filename carries a directory component
	ErrInvalidFilename = errors.New("invalid_filename")
)

const timestampLayout = "20060102150405"

// Storage persists uploaded files and returns their metadata
type Storage interface {
	Save(ctx context.Context, originalName string, data []byte) (*models.Floorplan, error)
}

func ioErr(err error) error {
	return fmt.Errorf("%w: %v", ErrIO, err)
}

// storedName returns the timestamp prefixed name of the upload
func storedName(now time.Time, originalName string) (string, error) {
	if !validate.Filename(originalName) {
		return "", ErrInvalidFilename
	}
	return fmt.Sprintf("%s_%s", now.Format(timestampLayout), originalName), nil
}

// uniqueName is used when the timestamp prefixed name is already taken
func uniqueName(now time.Time, originalName string) string {
	return fmt.Sprintf("%s_%s_%s", now.Format(timestampLayout), uuid.NewString()[:8], originalName)
}
