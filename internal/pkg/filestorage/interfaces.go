package filestorage

import (
	"context"
	"mime/multipart"
)

// FileStorage validates an uploaded image and stores it, returning the
// publicly reachable URL of the hosted file.
type FileStorage interface {
	SaveImage(ctx context.Context, fileHeader *multipart.FileHeader) (string, error)
}
