package services

import (
	"bytes"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartFile(t *testing.T, field, filename, content string) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&body, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	return form.File[field][0]
}

func TestStorageSaveFile(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(filepath.Join(dir, "uploads"))
	require.NoError(t, storage.EnsureUploadDir())

	for _, name := range []string{"jane.pdf", "jane.md", "JANE.Markdown", "jane.txt"} {
		t.Run(name, func(t *testing.T) {
			stored, err := storage.SaveFile(multipartFile(t, "resume", name, "# Jane"), "resume")
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(stored.Name, "resume_"))
			assert.Equal(t, strings.ToLower(filepath.Ext(name)), filepath.Ext(stored.Name))
			assert.Equal(t, storage.GetFilePath(stored.Name), stored.Path)
			assert.Equal(t, int64(len("# Jane")), stored.Size)

			data, err := os.ReadFile(stored.Path)
			require.NoError(t, err)
			assert.Equal(t, "# Jane", string(data))

			require.NoError(t, storage.DeleteFile(stored.Name))
			_, err = os.Stat(stored.Path)
			assert.True(t, errors.Is(err, os.ErrNotExist))
			assert.NoError(t, storage.DeleteFile(stored.Name))
		})
	}
}

func TestStorageRejectsExtension(t *testing.T) {
	storage := NewStorageService(t.TempDir())

	_, err := storage.SaveFile(multipartFile(t, "resume", "jane.docx", "data"), "resume")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedExtension))
}

func TestStorageGetFilePathStaysInUploadDir(t *testing.T) {
	storage := NewStorageService("/srv/uploads")
	assert.Equal(t, "/srv/uploads/passwd", storage.GetFilePath("../../etc/passwd"))
}

func TestStorageSweepOlderThan(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(dir)

	stale := filepath.Join(dir, "resume_old.pdf")
	fresh := filepath.Join(dir, "resume_new.pdf")
	require.NoError(t, os.WriteFile(stale, []byte("x"), 0644))
	require.NoError(t, os.WriteFile(fresh, []byte("x"), 0644))
	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	removed, err := storage.SweepOlderThan(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = os.Stat(stale)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	_, err = os.Stat(fresh)
	assert.NoError(t, err)
}
