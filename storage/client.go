package storage

import "mime/multipart"

// Client abstracts cloud storage operations for dependency injection and testing.
type Client interface {
	UploadMedia(file multipart.File, filename, contentType string) (url, objectPath string, err error)
	DeleteObject(objectPath string) error
}

// FirebaseClient is the real implementation that delegates to package-level functions.
type FirebaseClient struct{}

func NewClient() Client {
	return &FirebaseClient{}
}

func (f *FirebaseClient) UploadMedia(file multipart.File, filename, contentType string) (string, string, error) {
	return UploadMedia(file, filename, contentType)
}

func (f *FirebaseClient) DeleteObject(objectPath string) error {
	return DeleteObject(objectPath)
}
