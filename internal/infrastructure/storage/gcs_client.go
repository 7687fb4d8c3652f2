package storage

import (
	"context"
	"fmt"
	"io"
	"path"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"tutorhub/internal/domain/entity"
	"tutorhub/internal/domain/service"
)

type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

func NewCloudStorageClient(ctx context.Context, bucketName, credentialsPath string) (*CloudStorageClient, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

var _ service.FileStorage = (*CloudStorageClient)(nil)

func (c *CloudStorageClient) Upload(ctx context.Context, objectPath string, file io.Reader, size int64, onProgress service.ProgressFunc) (string, error) {
	obj := c.client.Bucket(c.bucketName).Object(objectPath)
	wc := obj.NewWriter(ctx)
	wc.CacheControl = "public, max-age=86400"

	var written int64
	buf := make([]byte, 32*1024)
	for {
		n, readErr := file.Read(buf)
		if n > 0 {
			if _, err := wc.Write(buf[:n]); err != nil {
				wc.Close()
				return "", fmt.Errorf("failed to write to bucket: %v", err)
			}
			written += int64(n)
			if onProgress != nil && size > 0 {
				onProgress(float64(written) / float64(size))
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			wc.Close()
			return "", fmt.Errorf("failed to read upload body: %v", readErr)
		}
	}

	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %v", err)
	}

	if onProgress != nil && size == 0 {
		onProgress(1)
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", fmt.Errorf("failed to set ACL: %v", err)
	}

	return c.objectURL(objectPath), nil
}

func (c *CloudStorageClient) Delete(ctx context.Context, objectPath string) error {
	obj := c.client.Bucket(c.bucketName).Object(objectPath)
	if err := obj.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete object: %v", err)
	}

	return nil
}

func (c *CloudStorageClient) List(ctx context.Context, prefix string) ([]*entity.StoredFile, error) {
	it := c.client.Bucket(c.bucketName).Objects(ctx, &storage.Query{Prefix: prefix})

	var files []*entity.StoredFile
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %v", err)
		}

		files = append(files, &entity.StoredFile{
			Name:      path.Base(attrs.Name),
			Path:      attrs.Name,
			URL:       c.objectURL(attrs.Name),
			CreatedAt: attrs.Created,
		})
	}

	return files, nil
}

func (c *CloudStorageClient) objectURL(objectPath string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, objectPath)
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}
