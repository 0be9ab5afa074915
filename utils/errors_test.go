package utils_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/storagetools/blobwalk/utils"
)

/**********************************
 ************TESTS*****************
 **********************************/

type errorsSuite struct {
	suite.Suite
}

// TestErrorWrapFunctions tests all error wrap functions with both nil and non-nil errors
func (s *errorsSuite) TestErrorWrapFunctions() {
	testError := errors.New("test error")

	testCases := []struct {
		name        string
		wrapFunc    func(error) error
		expectedMsg string
	}{
		{
			name:        "WrapCreateContainerError",
			wrapFunc:    utils.WrapCreateContainerError,
			expectedMsg: "create container error: test error",
		},
		{
			name:        "WrapDeleteContainerError",
			wrapFunc:    utils.WrapDeleteContainerError,
			expectedMsg: "delete container error: test error",
		},
		{
			name:        "WrapUploadError",
			wrapFunc:    utils.WrapUploadError,
			expectedMsg: "upload error: test error",
		},
		{
			name:        "WrapDownloadError",
			wrapFunc:    utils.WrapDownloadError,
			expectedMsg: "download error: test error",
		},
		{
			name:        "WrapListError",
			wrapFunc:    utils.WrapListError,
			expectedMsg: "list error: test error",
		},
		{
			name:        "WrapExistsError",
			wrapFunc:    utils.WrapExistsError,
			expectedMsg: "exists error: test error",
		},
		{
			name:        "WrapVerifyError",
			wrapFunc:    utils.WrapVerifyError,
			expectedMsg: "verify error: test error",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			wrapped := tc.wrapFunc(testError)
			s.Require().Error(wrapped)
			s.Equal(tc.expectedMsg, wrapped.Error())
			s.Require().ErrorIs(wrapped, testError)
		})
	}
}

func TestErrors(t *testing.T) {
	suite.Run(t, new(errorsSuite))
}
