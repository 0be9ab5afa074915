package azure

import (
	"errors"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

// TokenCredentialFactory creates azcore.TokenCredentials.  This function type is provided to allow for
// mocking in unit tests.
type TokenCredentialFactory func(tenantID, clientID, clientSecret string) (azcore.TokenCredential, error)

// DefaultTokenCredentialFactory knows how to make azcore.TokenCredential structs for OAuth authentication.
// With explicit service principal credentials it returns a ClientSecretCredential.  Without them it returns
// an EnvironmentCredential when the standard AZURE_* variables are set, and otherwise falls back to
// DefaultAzureCredential so managed identity and the local Azure CLI session are tried as well.
func DefaultTokenCredentialFactory(tenantID, clientID, clientSecret string) (azcore.TokenCredential, error) {
	switch {
	case tenantID != "" && clientID != "" && clientSecret != "":
		return azidentity.NewClientSecretCredential(tenantID, clientID, clientSecret, nil)
	case tenantID != "" || clientID != "" || clientSecret != "":
		return nil, errors.New("azure: tenant id, client id, and client secret must all be set for service principal authentication")
	case os.Getenv("AZURE_TENANT_ID") != "" && os.Getenv("AZURE_CLIENT_ID") != "" && os.Getenv("AZURE_CLIENT_SECRET") != "":
		return azidentity.NewEnvironmentCredential(nil)
	default:
		return azidentity.NewDefaultAzureCredential(nil)
	}
}
