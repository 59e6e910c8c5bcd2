// Package storage implements the logo blob store on top of gocloud.dev,
// so the bucket backend (local disk, S3, GCS) is chosen purely by the
// configured bucket URL.
package storage

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"path"
	"strings"

	"medify/config"
	"medify/internal/domain/lifecycle"
	"medify/internal/domain/service"
	"medify/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // Register the file:// bucket scheme.
	"gocloud.dev/gcerrors"
)

// logoPrefix groups all uploaded logos under one key namespace.
const logoPrefix = "logos/"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// blobLogoStorage implements service.LogoStorage backed by a gocloud bucket.
type blobLogoStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// New opens the configured bucket and binds its lifetime to the app lifecycle.
func New(params Params) (service.LogoStorage, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket url must be provided")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open logo bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobLogoStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(params.Config.Storage.PublicBaseURL, "/"),
	}, nil
}

// Save streams an uploaded image into the bucket under a fresh random key.
// The original filename only contributes its extension; the key itself is a
// UUID so uploads can never collide or overwrite each other.
func (s *blobLogoStorage) Save(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
			ext = exts[0]
		}
	}
	key := logoPrefix + uuid.New().String() + ext

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open logo writer")
	}

	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()

		return "", errors.Wrap(err, "failed to write logo")
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize logo write")
	}

	return key, nil
}

// Delete removes a stored logo. A missing key is treated as already deleted.
func (s *blobLogoStorage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to delete logo")
	}

	return nil
}

// PublicURL resolves a stored key to the absolute URL browsers fetch it from.
func (s *blobLogoStorage) PublicURL(key string) string {
	if key == "" {
		return ""
	}

	return s.publicBaseURL + "/" + key
}
