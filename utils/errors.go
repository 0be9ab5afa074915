package utils

import "fmt"

// WrapCreateContainerError returns a wrapped container create error
func WrapCreateContainerError(err error) error {
	return fmt.Errorf("create container error: %w", err)
}

// WrapDeleteContainerError returns a wrapped container delete error
func WrapDeleteContainerError(err error) error {
	return fmt.Errorf("delete container error: %w", err)
}

// WrapUploadError returns a wrapped upload error
func WrapUploadError(err error) error {
	return fmt.Errorf("upload error: %w", err)
}

// WrapDownloadError returns a wrapped download error
func WrapDownloadError(err error) error {
	return fmt.Errorf("download error: %w", err)
}

// WrapListError returns a wrapped list error
func WrapListError(err error) error {
	return fmt.Errorf("list error: %w", err)
}

// WrapExistsError returns a wrapped exists error
func WrapExistsError(err error) error {
	return fmt.Errorf("exists error: %w", err)
}

// WrapVerifyError returns a wrapped verify error
func WrapVerifyError(err error) error {
	return fmt.Errorf("verify error: %w", err)
}
