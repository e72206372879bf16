package photostore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/2beens/wellness/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const MaxPhotoBytes = 10 << 20

var (
	ErrPhotoNotFound = errors.New("photo not found")
	ErrInvalidPath   = errors.New("invalid photo path")
	ErrPhotoTooLarge = errors.New("photo too large")
)

// DiskStore keeps photos under a root directory. All paths are relative to it
// and cannot escape it.
type DiskStore struct {
	rootPath string
	root     *os.Root
}

func NewDiskStore(rootPath string) (*DiskStore, error) {
	if rootPath == "" {
		return nil, errors.New("root path cannot be empty")
	}
	if err := os.MkdirAll(rootPath, 0o755); err != nil {
		return nil, fmt.Errorf("create photos root: %w", err)
	}
	root, err := os.OpenRoot(rootPath)
	if err != nil {
		return nil, fmt.Errorf("open photos root: %w", err)
	}
	return &DiskStore{
		rootPath: rootPath,
		root:     root,
	}, nil
}

func cleanRelPath(p string) (string, error) {
	if p == "" || strings.HasPrefix(p, "/") {
		return "", ErrInvalidPath
	}
	cleaned := path.Clean(p)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", ErrInvalidPath
	}
	return cleaned, nil
}

func (ds *DiskStore) mkdirAll(dir string) error {
	if dir == "." {
		return nil
	}
	current := ""
	for _, part := range strings.Split(dir, "/") {
		current = path.Join(current, part)
		if err := ds.root.Mkdir(current, 0o755); err != nil && !errors.Is(err, fs.ErrExist) {
			return err
		}
	}
	return nil
}

// Save writes the photo to relPath and returns the number of bytes written.
func (ds *DiskStore) Save(ctx context.Context, relPath string, photo io.Reader) (_ int64, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "photoStore.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("photo.path", relPath))

	relPath, err = cleanRelPath(relPath)
	if err != nil {
		return 0, err
	}
	if err := ds.mkdirAll(path.Dir(relPath)); err != nil {
		return 0, fmt.Errorf("create photo dir: %w", err)
	}

	dst, err := ds.root.OpenFile(relPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return 0, fmt.Errorf("create photo file: %w", err)
	}

	written, err := io.Copy(dst, io.LimitReader(photo, MaxPhotoBytes+1))
	closeErr := dst.Close()
	if err == nil && written > MaxPhotoBytes {
		err = ErrPhotoTooLarge
	}
	if err == nil {
		err = closeErr
	}
	if err != nil {
		if removeErr := ds.root.Remove(relPath); removeErr != nil {
			log.Errorf("photo store: remove partial file %s: %s", relPath, removeErr)
		}
		return 0, err
	}

	span.SetAttributes(attribute.Int64("photo.size", written))
	log.Debugf("photo store: saved %s (%d bytes)", relPath, written)
	return written, nil
}

func (ds *DiskStore) Open(ctx context.Context, relPath string) (_ io.ReadCloser, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "photoStore.open")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	relPath, err = cleanRelPath(relPath)
	if err != nil {
		return nil, err
	}
	f, err := ds.root.Open(relPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrPhotoNotFound
		}
		return nil, err
	}
	return f, nil
}

func (ds *DiskStore) Delete(ctx context.Context, relPath string) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "photoStore.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	relPath, err = cleanRelPath(relPath)
	if err != nil {
		return err
	}
	if err := ds.root.Remove(relPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrPhotoNotFound
		}
		return err
	}
	return nil
}

func (ds *DiskStore) Close() error {
	return ds.root.Close()
}
