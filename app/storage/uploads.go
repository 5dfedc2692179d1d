package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// Upload kinds. Each kind gets its own year/month-partitioned directory
// under the upload root.
const (
	KindSlip    = "slips"
	KindReceipt = "receipts"
)

// MaxUploadSize caps uploaded images at 5MB.
const MaxUploadSize = 5 << 20

var (
	ErrNotImage = errors.New("only image files are accepted")
	ErrTooLarge = errors.New("file exceeds the 5MB upload limit")
)

// Resolver assigns uploaded files a storage location of the form
// <kind>/<year>/<month>/<unique-name> under Root and writes them there.
// Now is injectable so tests control the partition date.
type Resolver struct {
	Root string
	Now  func() time.Time
}

func NewResolver(root string) *Resolver {
	return &Resolver{Root: root, Now: time.Now}
}

// Save sniffs the file content (the client's content-type header is not
// trusted), stores it under the current year/month partition for kind, and
// returns the slash-separated path relative to Root, which is what gets
// persisted and served at /uploads/.
func (r *Resolver) Save(kind string, fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxUploadSize {
		return "", ErrTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	content, err := io.ReadAll(io.LimitReader(src, MaxUploadSize+1))
	if err != nil {
		return "", err
	}
	if int64(len(content)) > MaxUploadSize {
		return "", ErrTooLarge
	}

	if !strings.HasPrefix(mimetype.Detect(content).String(), "image/") {
		return "", ErrNotImage
	}

	now := r.Now()
	relDir := path.Join(kind, fmt.Sprintf("%d", now.Year()), fmt.Sprintf("%02d", int(now.Month())))
	dir := filepath.Join(r.Root, filepath.FromSlash(relDir))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	// Timestamp plus random suffix: concurrent uploads in the same request
	// window must not collide.
	name := fmt.Sprintf("%d-%s%s", now.UnixMilli(), uuid.New().String(), strings.ToLower(filepath.Ext(fh.Filename)))

	if err := os.WriteFile(filepath.Join(dir, name), content, 0644); err != nil {
		return "", err
	}

	return path.Join(relDir, name), nil
}
