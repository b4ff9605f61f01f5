package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("todo not found")
)

// StorageError wraps any failure that came from the store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsStorageError reports whether err came from the store.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
