// uploads_test.go - Tests for cover image storage
// Run with: go test ./...

package uploads

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"  // For assertions
	"github.com/stretchr/testify/require" // For mandatory preconditions
)

// makeFileHeader builds a real multipart.FileHeader by writing and
// re-parsing a multipart body, so Save sees exactly what gin would
// hand it.
func makeFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="coverImage"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	return form.File["coverImage"][0]
}

// TestSaveStoresFile verifies the generated name format and that the
// bytes land on disk.
func TestSaveStoresFile(t *testing.T) {
	dir := t.TempDir()
	file := makeFileHeader(t, "cover.png", "image/png", []byte("fake png bytes"))

	path, err := Save(file, dir)
	require.NoError(t, err)

	// Path format: /uploads/<basename>-<timestamp>.<ext>
	assert.True(t, strings.HasPrefix(path, "/uploads/cover-"), "unexpected path %q", path)
	assert.True(t, strings.HasSuffix(path, ".png"), "unexpected path %q", path)

	// Stored file holds the uploaded bytes
	name := strings.TrimPrefix(path, "/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake png bytes"), data)
}

// TestSaveRejectsBadType verifies the MIME whitelist.
func TestSaveRejectsBadType(t *testing.T) {
	dir := t.TempDir()
	file := makeFileHeader(t, "script.js", "text/javascript", []byte("alert(1)"))

	_, err := Save(file, dir)
	assert.ErrorIs(t, err, ErrBadType)

	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries, "nothing should be written for a rejected upload")
}

// TestSaveRejectsOversize verifies the 5MB cap. Size is checked before
// the file is opened, so a bare header is enough.
func TestSaveRejectsOversize(t *testing.T) {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Type", "image/jpeg")
	file := &multipart.FileHeader{Filename: "huge.jpg", Size: 6 << 20, Header: header}

	_, err := Save(file, t.TempDir())
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

// TestRemove covers the best-effort deletion paths: stored file,
// empty path, already-missing file and a path outside the prefix.
func TestRemove(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "old-123.png")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))

	// Stored file is deleted
	Remove(dir, "/uploads/old-123.png")
	_, err := os.Stat(target)
	assert.True(t, os.IsNotExist(err), "file should have been removed")

	// Empty path (recipe without a cover image) is a no-op
	Remove(dir, "")

	// Missing file is swallowed, not fatal
	Remove(dir, "/uploads/never-existed.png")

	// Path outside the upload prefix is refused
	outside := filepath.Join(dir, "keep.png")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o644))
	Remove(dir, "/uploads/../keep.png")
	_, err = os.Stat(outside)
	assert.NoError(t, err, "traversal path must not remove anything")
}
