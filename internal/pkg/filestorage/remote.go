package filestorage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jobhubs/backoffice/internal/pkg/apperrors"
	"github.com/jobhubs/backoffice/internal/pkg/logger"
)

// uploadPath is the single-file endpoint of the file-hosting API.
const uploadPath = "/api/v1/file-upload/single"

// allowedImageTypes are the sniffed content types the console accepts.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// RemoteStorage forwards validated image uploads to the platform's
// file-hosting API and returns the hosted URL. Nothing is written to the
// local filesystem.
type RemoteStorage struct {
	httpClient *http.Client
	baseURL    string
	maxSize    int64
}

// NewRemoteStorage creates a remote storage backed by the given hosting
// base URL. maxSize bounds accepted files in bytes.
func NewRemoteStorage(baseURL string, maxSize int64, timeout time.Duration) *RemoteStorage {
	return &RemoteStorage{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		maxSize:    maxSize,
	}
}

// SaveImage validates the upload (sniffed image type, size cap) and
// forwards it as multipart form data. The returned string is the hosted
// file's public URL.
func (rs *RemoteStorage) SaveImage(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil {
		return "", apperrors.NewBadRequestError("no file provided")
	}
	if fileHeader.Size > rs.maxSize {
		return "", apperrors.ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	// Sniff the real content type instead of trusting the client header.
	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}
	contentType := http.DetectContentType(head[:n])
	if !allowedImageTypes[contentType] {
		return "", apperrors.ErrUnsupportedFileType
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind uploaded file: %w", err)
	}

	filename := fileHeader.Filename
	if filename == "" {
		filename = uuid.New().String()
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to copy file content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rs.baseURL+uploadPath, &body)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := rs.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", apperrors.NewRequestError(resp.StatusCode, http.StatusText(resp.StatusCode), "")
	}

	var result struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	if result.URL == "" {
		return "", fmt.Errorf("upload response carried no url")
	}

	logger.Info().Str("filename", filename).Str("url", result.URL).Msg("File uploaded")
	return result.URL, nil
}
