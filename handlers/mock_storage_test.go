package handlers

import "mime/multipart"

type mockStorage struct {
	UploadMediaFn     func(file multipart.File, filename, contentType string) (string, string, error)
	DeleteObjectFn    func(objectPath string) error
	DeleteObjectCalls []string
	UploadCallCount   int
}

func newMockStorage() *mockStorage {
	return &mockStorage{
		DeleteObjectCalls: []string{},
	}
}

func (m *mockStorage) UploadMedia(file multipart.File, filename, contentType string) (string, string, error) {
	m.UploadCallCount++
	if m.UploadMediaFn != nil {
		return m.UploadMediaFn(file, filename, contentType)
	}
	return "https://storage.googleapis.com/test-bucket/media/test_image.jpg", "media/test_image.jpg", nil
}

func (m *mockStorage) DeleteObject(objectPath string) error {
	m.DeleteObjectCalls = append(m.DeleteObjectCalls, objectPath)
	if m.DeleteObjectFn != nil {
		return m.DeleteObjectFn(objectPath)
	}
	return nil
}
