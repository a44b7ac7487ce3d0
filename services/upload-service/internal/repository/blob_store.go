package repository

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/LaithTanirah/football/services/upload-service/internal/domain"
)

const blobCacheControl = "public, max-age=604800"

// BlobAssetStore keeps assets in an Azure Blob Storage container.
type BlobAssetStore struct {
	client    *azblob.Client
	container string
}

var (
	_ domain.AssetStore  = (*BlobAssetStore)(nil)
	_ domain.AssetReader = (*BlobAssetStore)(nil)
)

func NewBlobAssetStore(client *azblob.Client, container string) *BlobAssetStore {
	return &BlobAssetStore{client: client, container: container}
}

func NewBlobAssetStoreFromConnectionString(connectionString, container string) (*BlobAssetStore, error) {
	client, err := azblob.NewClientFromConnectionString(connectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("storage: azure client: %w", err)
	}
	return NewBlobAssetStore(client, container), nil
}

// Init creates the container with public blob access if it does not exist yet.
func (s *BlobAssetStore) Init(ctx context.Context) error {
	_, err := s.client.CreateContainer(ctx, s.container, &azblob.CreateContainerOptions{
		Access: to.Ptr(azblob.PublicAccessTypeBlob),
	})
	if err != nil {
		var respErr *azcore.ResponseError
		if errors.As(err, &respErr) && respErr.ErrorCode == string(bloberror.ContainerAlreadyExists) {
			return nil
		}
		return fmt.Errorf("storage: create container: %w", err)
	}
	return nil
}

// Save uploads data only if no blob with that name exists, then reads the properties back.
func (s *BlobAssetStore) Save(ctx context.Context, filename string, data []byte, contentType string) (string, int64, error) {
	if s.client == nil {
		return "", 0, fmt.Errorf("storage: azure client is nil")
	}
	if err := validateName(filename); err != nil {
		return "", 0, err
	}
	_, err := s.client.UploadBuffer(ctx, s.container, filename, data, &azblob.UploadBufferOptions{
		BlockSize: int64(1024) * 256, // 256KB
		HTTPHeaders: &blob.HTTPHeaders{
			BlobContentType:  to.Ptr(contentType),
			BlobCacheControl: to.Ptr(blobCacheControl),
		},
		AccessConditions: &blob.AccessConditions{
			ModifiedAccessConditions: &blob.ModifiedAccessConditions{IfNoneMatch: to.Ptr(azcore.ETagAny)},
		},
	})
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobAlreadyExists, bloberror.ConditionNotMet) {
			return "", 0, fmt.Errorf("storage: %s: %w", filename, domain.ErrAssetExists)
		}
		return "", 0, fmt.Errorf("storage: upload: %w", err)
	}

	props, err := s.blobClient(filename).GetProperties(ctx, nil)
	if err != nil {
		return "", 0, fmt.Errorf("storage: get properties: %w", err)
	}
	size := int64(len(data))
	if props.ContentLength != nil {
		size = *props.ContentLength
	}
	return s.container + "/" + filename, size, nil
}

func (s *BlobAssetStore) Ready(ctx context.Context) error {
	if _, err := s.client.ServiceClient().NewContainerClient(s.container).GetProperties(ctx, nil); err != nil {
		return fmt.Errorf("storage: container properties: %w", err)
	}
	return nil
}

// Open streams a stored blob. Unknown names yield domain.ErrAssetNotFound.
func (s *BlobAssetStore) Open(ctx context.Context, filename string) (io.ReadCloser, string, int64, error) {
	if err := validateName(filename); err != nil {
		return nil, "", 0, domain.ErrAssetNotFound
	}
	resp, err := s.client.DownloadStream(ctx, s.container, filename, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound, bloberror.ContainerNotFound) {
			return nil, "", 0, domain.ErrAssetNotFound
		}
		return nil, "", 0, fmt.Errorf("storage: download: %w", err)
	}
	contentType := "application/octet-stream"
	if resp.ContentType != nil {
		contentType = *resp.ContentType
	}
	var size int64 = -1
	if resp.ContentLength != nil {
		size = *resp.ContentLength
	}
	return resp.Body, contentType, size, nil
}

func (s *BlobAssetStore) blobClient(filename string) *blob.Client {
	return s.client.ServiceClient().NewContainerClient(s.container).NewBlobClient(filename)
}
