package usecase

import (
	"bytes"
	"context"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"practice-site/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89,
}

func multipartFile(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["file"][0]
}

func newTestUploadUsecase(t *testing.T, maxSize int64) (UploadUsecase, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.UploadConfig{Dir: dir, MaxSize: maxSize}
	return NewUploadUsecase(testLogger(), cfg, "http://localhost:5000/", newTestAudit()), dir
}

func TestUploadUsecase_SaveImage(t *testing.T) {
	uc, dir := newTestUploadUsecase(t, 1024)

	resp, err := uc.Save(context.Background(), "team", multipartFile(t, "Dr Smith.PNG", pngHeader))
	require.NoError(t, err)

	assert.Regexp(t, `^dr-smith-[0-9a-f]{8}\.png$`, resp.Filename)
	assert.Equal(t, "team", resp.Type)
	assert.Equal(t, "image/png", resp.MimeType)
	assert.Equal(t, int64(len(pngHeader)), resp.Size)
	assert.Equal(t, "http://localhost:5000/uploads/team/"+resp.Filename, resp.URL)

	stored, err := os.ReadFile(filepath.Join(dir, "team", resp.Filename))
	require.NoError(t, err)
	assert.Equal(t, pngHeader, stored)
}

func TestUploadUsecase_SaveDefaultsToGeneral(t *testing.T) {
	uc, _ := newTestUploadUsecase(t, 1024)

	resp, err := uc.Save(context.Background(), "", multipartFile(t, "photo.png", pngHeader))
	require.NoError(t, err)
	assert.Equal(t, DefaultUploadType, resp.Type)
}

func TestUploadUsecase_SaveRejects(t *testing.T) {
	uc, _ := newTestUploadUsecase(t, 16)
	ctx := context.Background()

	_, err := uc.Save(ctx, "general", multipartFile(t, "notes.png", []byte("plain text")))
	assert.ErrorIs(t, err, ErrUnsupportedFileType)

	_, err = uc.Save(ctx, "general", multipartFile(t, "big.png", pngHeader))
	assert.ErrorIs(t, err, ErrFileTooLarge)

	_, err = uc.Save(ctx, "secrets", multipartFile(t, "a.png", []byte("x")))
	assert.ErrorIs(t, err, ErrInvalidUploadType)
}

func TestUploadUsecase_Delete(t *testing.T) {
	uc, dir := newTestUploadUsecase(t, 1024)
	ctx := context.Background()

	resp, err := uc.Save(ctx, "blog", multipartFile(t, "cover.png", pngHeader))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, "blog", resp.Filename))
	_, err = os.Stat(filepath.Join(dir, "blog", resp.Filename))
	assert.True(t, os.IsNotExist(err))

	assert.ErrorIs(t, uc.Delete(ctx, "blog", resp.Filename), ErrUploadNotFound)
	assert.ErrorIs(t, uc.Delete(ctx, "blog", "../site.json"), ErrInvalidFilename)
	assert.ErrorIs(t, uc.Delete(ctx, "blog", ".."), ErrInvalidFilename)
	assert.ErrorIs(t, uc.Delete(ctx, "other", "a.png"), ErrInvalidUploadType)
}
