package service

import (
	"context"
	"io"

	"tutorhub/internal/domain/entity"
)

// ProgressFunc receives the upload fraction in [0, 1].
type ProgressFunc func(fraction float64)

type FileStorage interface {
	// Upload streams file to path and reports fractional progress. size is
	// the total byte count used for the progress denominator. Returns the
	// durable download URL.
	Upload(ctx context.Context, path string, file io.Reader, size int64, onProgress ProgressFunc) (string, error)

	Delete(ctx context.Context, path string) error

	List(ctx context.Context, prefix string) ([]*entity.StoredFile, error)

	Close() error
}
