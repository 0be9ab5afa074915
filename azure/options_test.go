package azure

import (
	"context"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/stretchr/testify/suite"
)

/**********************************
 ************TESTS*****************
 **********************************/

type optionsSuite struct {
	suite.Suite
}

// fakeTokenCredential implements azcore.TokenCredential for tests
type fakeTokenCredential struct{}

func (f *fakeTokenCredential) GetToken(_ context.Context, _ policy.TokenRequestOptions) (azcore.AccessToken, error) {
	return azcore.AccessToken{Token: "fake-token"}, nil
}

func (s *optionsSuite) TestNewOptions() {
	s.T().Setenv("BLOBWALK_SERVICE_URL", "http://127.0.0.1:10000/devstoreaccount1")
	s.T().Setenv("AZURE_STORAGE_ACCOUNT", "devstoreaccount1")
	s.T().Setenv("AZURE_STORAGE_ACCESS_KEY", "dGVzdGtleQ==")
	s.T().Setenv("BLOBWALK_TENANT_ID", "")
	s.T().Setenv("BLOBWALK_CLIENT_ID", "")
	s.T().Setenv("BLOBWALK_CLIENT_SECRET", "")

	options, err := NewOptions()
	s.Require().NoError(err)
	s.Equal("http://127.0.0.1:10000/devstoreaccount1", options.ServiceURL)
	s.Equal("devstoreaccount1", options.AccountName)
	s.Equal("dGVzdGtleQ==", options.AccountKey)
	s.Empty(options.TenantID)
}

func (s *optionsSuite) TestCredential_ServicePrincipal() {
	var gotTenantID, gotClientID, gotClientSecret string
	options := &Options{
		TenantID:     "test-tenant-id",
		ClientID:     "test-client-id",
		ClientSecret: "test-client-secret",
		AccountName:  "testaccount",
		AccountKey:   "dGVzdGtleQ==",
		tokenCredentialFactory: func(tenantID, clientID, clientSecret string) (azcore.TokenCredential, error) {
			gotTenantID, gotClientID, gotClientSecret = tenantID, clientID, clientSecret
			return &fakeTokenCredential{}, nil
		},
	}

	// Service principal credentials take precedence over the account key
	credential, err := options.Credential()
	s.Require().NoError(err)
	s.IsType(&fakeTokenCredential{}, credential)
	s.Equal("test-tenant-id", gotTenantID)
	s.Equal("test-client-id", gotClientID)
	s.Equal("test-client-secret", gotClientSecret)
}

func (s *optionsSuite) TestCredential_SharedKey() {
	options := &Options{
		AccountName: "testaccount",
		AccountKey:  "dGVzdGtleQ==",
	}

	credential, err := options.Credential()
	s.Require().NoError(err)
	s.IsType(&azblob.SharedKeyCredential{}, credential)
}

func (s *optionsSuite) TestCredential_DefaultChain() {
	called := false
	options := &Options{
		tokenCredentialFactory: func(tenantID, clientID, clientSecret string) (azcore.TokenCredential, error) {
			called = true
			s.Empty(tenantID)
			s.Empty(clientID)
			s.Empty(clientSecret)
			return &fakeTokenCredential{}, nil
		},
	}

	// With no explicit credentials the factory is asked for the default chain
	credential, err := options.Credential()
	s.Require().NoError(err)
	s.IsType(&fakeTokenCredential{}, credential)
	s.True(called)
}

func TestOptions(t *testing.T) {
	suite.Run(t, new(optionsSuite))
}
