package upload

import (
	"bytes"
	"context"
	"net/http"
	"path"
	"time"

	"github.com/VinukaThejana/immerzo/models"
	"github.com/minio/minio-go/v7"
)

// Minio stores uploads as objects in a bucket
type Minio struct {
	Client       *minio.Client
	Bucket       string
	PublicPrefix string
	Now          func() time.Time
}

// NewMinio creates a bucket backed storage, the bucket is created when missing
func NewMinio(ctx context.Context, client *minio.Client, bucket, publicPrefix string) (*Minio, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, ioErr(err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, ioErr(err)
		}
	}

	return &Minio{
		Client:       client,
		Bucket:       bucket,
		PublicPrefix: publicPrefix,
		Now:          time.Now,
	}, nil
}

// Save uploads the data as a new object
func (m *Minio) Save(ctx context.Context, originalName string, data []byte) (*models.Floorplan, error) {
	now := m.Now()
	name, err := storedName(now, originalName)
	if err != nil {
		return nil, err
	}

	if _, err := m.Client.StatObject(ctx, m.Bucket, name, minio.StatObjectOptions{}); err == nil {
		name = uniqueName(now, originalName)
	}

	info, err := m.Client.PutObject(ctx, m.Bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: http.DetectContentType(data),
	})
	if err != nil {
		return nil, ioErr(err)
	}

	return &models.Floorplan{
		Filename: name,
		Path:     path.Join(m.PublicPrefix, m.Bucket, name),
		Size:     info.Size,
	}, nil
}
