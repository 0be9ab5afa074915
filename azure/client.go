package azure

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/streaming"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blockblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"

	"github.com/storagetools/blobwalk/utils"
)

// The Client interface contains methods that perform specific operations to Azure Blob Storage.  This interface is
// here so we can write mocks over the actual functionality.
type Client interface {
	Properties(ctx context.Context, containerName, blobName string) (*BlobProperties, error)
	CreateContainer(ctx context.Context, containerName string) error
	DeleteContainer(ctx context.Context, containerName string) error
	Upload(ctx context.Context, containerName, blobName string, content io.ReadSeeker, contentType string) error
	Download(ctx context.Context, containerName, blobName string) (io.ReadCloser, error)
	List(ctx context.Context, containerName string) ([]string, error)
	Delete(ctx context.Context, containerName, blobName string) error
}

// DefaultClient is the main implementation that actually makes the calls to Azure Blob Storage.  The SDK's
// default retry policy (exponential backoff, 3 retries) applies to every call.
type DefaultClient struct {
	serviceURL *url.URL
	credential any
}

// NewClient initializes a new DefaultClient from the given Options.  The service URL is taken from
// Options.ServiceURL or derived from the account name when unset.
func NewClient(options *Options) (*DefaultClient, error) {
	rawURL := options.ServiceURL
	if rawURL == "" {
		if options.AccountName == "" {
			return nil, errors.New("azure: either a service URL or an account name is required")
		}
		rawURL = fmt.Sprintf("https://%s.blob.core.windows.net", options.AccountName)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	credential, err := options.Credential()
	if err != nil {
		return nil, err
	}

	return &DefaultClient{serviceURL: u, credential: credential}, nil
}

// Properties fetches the properties for the blob specified by containerName and blobName.  When blobName is
// empty the call degrades to a container existence check and the returned properties are nil.
func (c *DefaultClient) Properties(ctx context.Context, containerName, blobName string) (*BlobProperties, error) {
	cli, err := c.containerClient(containerName)
	if err != nil {
		return nil, err
	}

	if blobName == "" {
		// this is only used to check for the existence of a container so we don't care about anything but the
		// error
		if _, err := cli.GetProperties(ctx, nil); err != nil {
			return nil, err
		}
		return nil, nil
	}

	resp, err := cli.NewBlobClient(utils.RemoveLeadingSlash(blobName)).GetProperties(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewBlobProperties(resp), nil
}

// CreateContainer creates the named container.  An attempt to create a container that already exists returns
// the SDK error unchanged; callers classify it with bloberror.HasCode.
func (c *DefaultClient) CreateContainer(ctx context.Context, containerName string) error {
	cli, err := c.containerClient(containerName)
	if err != nil {
		return err
	}
	_, err = cli.Create(ctx, nil)
	return err
}

// DeleteContainer deletes the named container and every blob inside it.
func (c *DefaultClient) DeleteContainer(ctx context.Context, containerName string) error {
	cli, err := c.containerClient(containerName)
	if err != nil {
		return err
	}
	_, err = cli.Delete(ctx, nil)
	return err
}

// Upload uploads a new blob to Azure Blob Storage, overwriting any existing blob with the same name.
func (c *DefaultClient) Upload(ctx context.Context, containerName, blobName string, content io.ReadSeeker, contentType string) error {
	cli, err := c.containerClient(containerName)
	if err != nil {
		return err
	}

	var uploadOptions *blockblob.UploadOptions
	if contentType != "" {
		uploadOptions = &blockblob.UploadOptions{
			HTTPHeaders: &blob.HTTPHeaders{BlobContentType: to.Ptr(contentType)},
		}
	}

	_, err = cli.NewBlockBlobClient(utils.RemoveLeadingSlash(blobName)).Upload(ctx, streaming.NopCloser(content), uploadOptions)
	return err
}

// Download returns an io.ReadCloser for the named blob.  The caller is responsible for closing it.
func (c *DefaultClient) Download(ctx context.Context, containerName, blobName string) (io.ReadCloser, error) {
	cli, err := c.containerClient(containerName)
	if err != nil {
		return nil, err
	}

	resp, err := cli.NewBlobClient(utils.RemoveLeadingSlash(blobName)).DownloadStream(ctx, nil)
	if err != nil {
		return nil, err
	}
	return resp.NewRetryReader(ctx, nil), nil
}

// List returns the names of every blob in the named container, in the order the service returns them
// (lexicographic).
func (c *DefaultClient) List(ctx context.Context, containerName string) ([]string, error) {
	cli, err := c.containerClient(containerName)
	if err != nil {
		return nil, err
	}

	var names []string
	pager := cli.NewListBlobsFlatPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Segment.BlobItems {
			if item.Name != nil {
				names = append(names, *item.Name)
			}
		}
	}
	return names, nil
}

// Delete deletes the named blob from Azure Blob Storage.
func (c *DefaultClient) Delete(ctx context.Context, containerName, blobName string) error {
	cli, err := c.containerClient(containerName)
	if err != nil {
		return err
	}
	_, err = cli.NewBlobClient(utils.RemoveLeadingSlash(blobName)).Delete(ctx, nil)
	return err
}

// containerClient builds a container-scoped SDK client using whichever credential the options resolved to.
// A nil credential produces an unauthenticated client, which serves anonymous access and test servers.
func (c *DefaultClient) containerClient(containerName string) (*container.Client, error) {
	u := c.serviceURL.JoinPath(containerName).String()

	switch credential := c.credential.(type) {
	case *azblob.SharedKeyCredential:
		return container.NewClientWithSharedKeyCredential(u, credential, nil)
	case azcore.TokenCredential:
		return container.NewClient(u, credential, nil)
	default:
		return container.NewClientWithNoCredential(u, nil)
	}
}
