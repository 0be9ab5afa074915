package azure

import (
	"bytes"
	"context"
	"io"
	"sort"
)

// MockClient is a mock implementation of azure.Client backed by an in-memory blob map.  Set the per-operation
// error fields to force failures; successful uploads are recorded and served back by Download and List.
type MockClient struct {
	PropertiesError      error
	PropertiesResult     *BlobProperties
	CreateContainerError error
	DeleteContainerError error
	UploadError          error
	DownloadError        error
	ListError            error
	ListResult           []string
	DeleteError          error

	Containers map[string]bool
	Blobs      map[string][]byte
}

// Properties returns PropertiesResult if it is set, otherwise it derives properties from the stored blob.
func (a *MockClient) Properties(_ context.Context, containerName, blobName string) (*BlobProperties, error) {
	if a.PropertiesError != nil {
		return nil, a.PropertiesError
	}
	if blobName == "" {
		return nil, nil
	}
	if a.PropertiesResult != nil {
		return a.PropertiesResult, nil
	}
	if content, ok := a.blobs()[a.key(containerName, blobName)]; ok {
		size := int64(len(content))
		return &BlobProperties{Size: &size}, nil
	}
	return &BlobProperties{}, nil
}

// CreateContainer records the container and returns the value of CreateContainerError
func (a *MockClient) CreateContainer(_ context.Context, containerName string) error {
	if a.CreateContainerError != nil {
		return a.CreateContainerError
	}
	if a.Containers == nil {
		a.Containers = make(map[string]bool)
	}
	a.Containers[containerName] = true
	return nil
}

// DeleteContainer removes the container and all of its blobs, returning the value of DeleteContainerError
func (a *MockClient) DeleteContainer(_ context.Context, containerName string) error {
	if a.DeleteContainerError != nil {
		return a.DeleteContainerError
	}
	delete(a.Containers, containerName)
	prefix := containerName + "/"
	for key := range a.blobs() {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			delete(a.Blobs, key)
		}
	}
	return nil
}

// Upload stores the content in the blob map and returns the value of UploadError
func (a *MockClient) Upload(_ context.Context, containerName, blobName string, content io.ReadSeeker, _ string) error {
	if a.UploadError != nil {
		return a.UploadError
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return err
	}
	if a.Blobs == nil {
		a.Blobs = make(map[string][]byte)
	}
	a.Blobs[a.key(containerName, blobName)] = data
	return nil
}

// Download serves the stored blob content, or returns the value of DownloadError
func (a *MockClient) Download(_ context.Context, containerName, blobName string) (io.ReadCloser, error) {
	if a.DownloadError != nil {
		return nil, a.DownloadError
	}
	content, ok := a.blobs()[a.key(containerName, blobName)]
	if !ok {
		return nil, io.ErrUnexpectedEOF
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

// List returns ListResult if set, otherwise the sorted names of stored blobs in the container.
func (a *MockClient) List(_ context.Context, containerName string) ([]string, error) {
	if a.ListError != nil {
		return nil, a.ListError
	}
	if a.ListResult != nil {
		return a.ListResult, nil
	}
	prefix := containerName + "/"
	var names []string
	for key := range a.blobs() {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			names = append(names, key[len(prefix):])
		}
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes the blob from the blob map and returns the value of DeleteError
func (a *MockClient) Delete(_ context.Context, containerName, blobName string) error {
	if a.DeleteError != nil {
		return a.DeleteError
	}
	delete(a.Blobs, a.key(containerName, blobName))
	return nil
}

func (a *MockClient) key(containerName, blobName string) string {
	return containerName + "/" + blobName
}

func (a *MockClient) blobs() map[string][]byte {
	if a.Blobs == nil {
		a.Blobs = make(map[string][]byte)
	}
	return a.Blobs
}
