package service

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/shubhamgoyal071/website/internal/apperr"
	"github.com/shubhamgoyal071/website/internal/config"
	"github.com/shubhamgoyal071/website/internal/utils"

	"github.com/google/uuid"
)

// The asset store owns the binary lifecycle of uploaded photos. Files are
// immutable once written; replacing a photo means storing a new file and
// removing the old path.

func uploadRoot() string {
	root := config.Get().Upload.Path
	if root == "" {
		root = "uploads/photos"
	}
	return root
}

// SaveAsset validates and stores one uploaded image. The size cap and the
// content-type check both run before anything touches disk. On success the
// returned path is slash-relative to the upload root.
func SaveAsset(file *multipart.FileHeader) (string, error) {
	maxSizeMB := config.Get().Upload.MaxSizeMB
	if maxSizeMB <= 0 {
		maxSizeMB = 5
	}
	if file.Size > int64(maxSizeMB)*1024*1024 {
		return "", &apperr.Error{
			Code:    apperr.CodePayloadTooLarge,
			Message: fmt.Sprintf("file size exceeds the %dMB limit", maxSizeMB),
		}
	}

	src, err := file.Open()
	if err != nil {
		return "", apperr.Storage("cannot read the uploaded file", err)
	}
	defer func() { _ = src.Close() }()

	contentType, ext, ok, err := utils.SniffImageType(src)
	if err != nil {
		return "", apperr.Storage("cannot inspect the uploaded file", err)
	}
	if !ok {
		return "", &apperr.Error{
			Code:    apperr.CodeUnsupportedMediaType,
			Message: "unsupported file type " + contentType + ": only JPG, PNG and WebP are allowed",
		}
	}

	// Date-partitioned directory with a collision-resistant name.
	now := time.Now()
	datePath := filepath.Join(now.Format("2006"), now.Format("01"), now.Format("02"))
	fullDir := filepath.Join(uploadRoot(), datePath)
	if err := os.MkdirAll(fullDir, 0755); err != nil {
		log.Printf("MkdirAll error: %v\n", err)
		return "", apperr.Storage("cannot create the storage directory", err)
	}

	newFilename := uuid.New().String() + ext
	dst := filepath.Join(fullDir, newFilename)

	out, err := os.Create(dst)
	if err != nil {
		return "", apperr.Storage("cannot create the destination file", err)
	}
	defer func() { _ = out.Close() }()

	if _, err = io.Copy(out, src); err != nil {
		_ = os.Remove(dst)
		return "", apperr.Storage("failed to save the file", err)
	}

	return filepath.ToSlash(filepath.Join(datePath, newFilename)), nil
}

// RemoveAsset deletes a stored file. A missing file is a no-op so the
// operation stays idempotent under retries and partial prior failures.
func RemoveAsset(relPath string) error {
	if relPath == "" {
		return nil
	}
	fullPath := filepath.Join(uploadRoot(), filepath.FromSlash(relPath))
	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		log.Printf("Remove asset error: %v, path: %s\n", err, fullPath)
		return apperr.Storage("failed to remove the stored file", err)
	}
	return nil
}

// AssetExists reports whether the stored file for relPath is present.
func AssetExists(relPath string) bool {
	fullPath := filepath.Join(uploadRoot(), filepath.FromSlash(relPath))
	_, err := os.Stat(fullPath)
	return err == nil
}
