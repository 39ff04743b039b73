package filestorage

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobhubs/backoffice/internal/pkg/apperrors"
)

// pngHeader is enough of a PNG for content sniffing.
var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}

func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["file"][0]
}

func TestRemoteStorageSaveImage(t *testing.T) {
	var gotPath, gotFilename string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(32<<20))
		gotFilename = r.MultipartForm.File["file"][0].Filename
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"url":"https://cdn.example.com/photos/abc.png"}`))
	}))
	defer server.Close()

	rs := NewRemoteStorage(server.URL, 5*1024*1024, time.Second)
	url, err := rs.SaveImage(context.Background(), makeFileHeader(t, "photo.png", pngHeader))
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/photos/abc.png", url)
	assert.Equal(t, "/api/v1/file-upload/single", gotPath)
	assert.Equal(t, "photo.png", gotFilename)
}

func TestRemoteStorageRejectsNonImage(t *testing.T) {
	rs := NewRemoteStorage("http://unused.invalid", 5*1024*1024, time.Second)

	_, err := rs.SaveImage(context.Background(), makeFileHeader(t, "notes.txt", []byte("just some text")))
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedFileType)
}

func TestRemoteStorageRejectsOversizedFile(t *testing.T) {
	rs := NewRemoteStorage("http://unused.invalid", 4, time.Second)

	_, err := rs.SaveImage(context.Background(), makeFileHeader(t, "photo.png", pngHeader))
	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
}

func TestRemoteStorageUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	rs := NewRemoteStorage(server.URL, 5*1024*1024, time.Second)
	_, err := rs.SaveImage(context.Background(), makeFileHeader(t, "photo.png", pngHeader))

	reqErr, ok := apperrors.AsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, reqErr.Status)
}
