// uploads.go - Cover image storage
// Saves multipart image uploads under a generated unique filename and
// removes stale files best-effort. Allowed types: jpeg, jpg, png, webp.
// Max size: 5MB. Saved files are served statically under /uploads.

package uploads // Declares the package name

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart" // Uploaded file headers
	"os"
	"path/filepath" // Filename/extension handling
	"strings"
	"time"

	"github.com/sirupsen/logrus" // Structured logging
)

// URLPrefix is the public route uploaded images are served under.
const URLPrefix = "/uploads"

const maxFileSize = 5 << 20 // 5MB upload cap

var (
	ErrFileTooLarge = errors.New("uploads: file exceeds 5MB limit")
	ErrBadType      = errors.New("uploads: only image files are allowed (jpeg, jpg, png, webp)")
)

var allowedTypes = map[string]bool{ // MIME whitelist for cover images
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// Save validates and stores an uploaded cover image in dir, returning
// the server-relative path to record on the recipe. The stored name is
// <original basename>-<timestamp><original extension> to keep uploads
// unique across recipes.
func Save(file *multipart.FileHeader, dir string) (string, error) {
	// STEP 1: Validate size and type before touching the disk
	if file.Size > maxFileSize {
		return "", ErrFileTooLarge
	}
	if !allowedTypes[file.Header.Get("Content-Type")] {
		return "", ErrBadType
	}

	// STEP 2: Build the unique filename
	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	name := fmt.Sprintf("%s-%d%s", base, time.Now().UnixNano(), ext)

	// STEP 3: Copy the upload into the storage directory
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return URLPrefix + "/" + name, nil // Server-relative path stored on the recipe
}

// Remove deletes a previously stored image, best-effort: failures are
// logged and swallowed so they never fail the surrounding request.
// Empty paths (recipe without a cover image) are a no-op.
func Remove(dir, relPath string) {
	if relPath == "" {
		return
	}
	name := strings.TrimPrefix(relPath, URLPrefix+"/")
	// Only paths we generated ourselves are removable
	if name == relPath || name != filepath.Base(name) {
		logrus.WithField("path", relPath).Warn("refusing to remove file outside upload directory")
		return
	}
	if err := os.Remove(filepath.Join(dir, name)); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).WithField("path", relPath).Warn("failed to remove uploaded image")
	}
}
