package azure

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/caarlos0/env/v11"
)

// Options contains options necessary to authenticate against Azure Blob Storage.
type Options struct {
	// ServiceURL holds the full blob service URL.  When empty it is derived from AccountName.
	ServiceURL string `env:"BLOBWALK_SERVICE_URL"`

	// AccountName holds the Azure Blob Storage account name for authentication
	AccountName string `env:"AZURE_STORAGE_ACCOUNT"`

	// AccountKey holds the Azure Blob Storage account key for authentication
	AccountKey string `env:"AZURE_STORAGE_ACCESS_KEY"`

	// TenantID holds the Azure Service Account tenant id for authentication
	TenantID string `env:"BLOBWALK_TENANT_ID"`

	// ClientID holds the Azure Service Account client id for authentication
	ClientID string `env:"BLOBWALK_CLIENT_ID"`

	// ClientSecret holds the Azure Service Account client secret for authentication
	ClientSecret string `env:"BLOBWALK_CLIENT_SECRET"`

	tokenCredentialFactory TokenCredentialFactory
}

// NewOptions returns Options populated from the environment.
func NewOptions() (*Options, error) {
	o := &Options{tokenCredentialFactory: DefaultTokenCredentialFactory}
	if err := env.Parse(o); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return o, nil
}

// Credential resolves the credential to use for blob operations.  Explicit service principal credentials
// win, then storage account shared key credentials, and finally the default credential chain (environment,
// managed identity, Azure CLI session).
func (o *Options) Credential() (any, error) {
	factory := o.tokenCredentialFactory
	if factory == nil {
		factory = DefaultTokenCredentialFactory
	}

	// Check to see if we have service account credentials
	if o.TenantID != "" && o.ClientID != "" && o.ClientSecret != "" {
		return factory(o.TenantID, o.ClientID, o.ClientSecret)
	}

	// Check to see if we have storage account credentials
	if o.AccountName != "" && o.AccountKey != "" {
		return azblob.NewSharedKeyCredential(o.AccountName, o.AccountKey)
	}

	// Fall back to the default credential chain
	return factory("", "", "")
}
