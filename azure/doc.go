/*
Package azure provides a thin, mockable client over the Azure Blob Storage SDK.

The Client interface covers the container and blob operations blobwalk needs
(container create/delete, blob upload/download/list/delete, and a properties
lookup used for existence checks). DefaultClient is the implementation backed
by github.com/Azure/azure-sdk-for-go/sdk/storage/azblob; MockClient is an
in-memory stand-in for unit tests.

# Authentication

Credentials resolve in the following order:

 1. Service principal: if tenant id, client id, and client secret are all set
    on Options, a ClientSecretCredential is used.
 2. Shared key: if an account name and account key are set, a
    SharedKeyCredential is used.
 3. Default chain: otherwise azidentity's DefaultAzureCredential is used,
    which tries environment variables, workload identity, managed identity,
    and the local Azure CLI session in turn.

# Options

Options are read from the environment:

	BLOBWALK_SERVICE_URL      - blob service URL (derived from the account name when unset)
	AZURE_STORAGE_ACCOUNT     - storage account name
	AZURE_STORAGE_ACCESS_KEY  - storage account shared key
	BLOBWALK_TENANT_ID        - service principal tenant id
	BLOBWALK_CLIENT_ID        - service principal client id
	BLOBWALK_CLIENT_SECRET    - service principal client secret
*/
package azure
