package azure

import (
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storagetools/blobwalk/utils"
)

func TestNewBlobProperties(t *testing.T) {
	lastModified := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	resp := blob.GetPropertiesResponse{
		ContentLength: utils.Ptr(int64(58)),
		LastModified:  &lastModified,
		Metadata:      map[string]*string{"origin": utils.Ptr("blobwalk")},
	}

	props := NewBlobProperties(resp)
	require.NotNil(t, props)
	require.NotNil(t, props.Size)
	assert.Equal(t, int64(58), *props.Size)
	require.NotNil(t, props.LastModified)
	assert.True(t, lastModified.Equal(*props.LastModified))
	assert.Equal(t, map[string]*string{"origin": utils.Ptr("blobwalk")}, props.Metadata)
}

func TestNewBlobProperties_Empty(t *testing.T) {
	props := NewBlobProperties(blob.GetPropertiesResponse{})
	require.NotNil(t, props)
	assert.Nil(t, props.Size)
	assert.Nil(t, props.LastModified)
	assert.Nil(t, props.Metadata)
}
