// SPDX-FileCopyrightText: 2025 badgesmith contributors
// SPDX-License-Identifier: Apache-2.0

package remote

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the addressed path does not exist remotely.
	ErrNotFound = errors.New("remote path not found")

	// ErrFailedAuthentication indicates the remote rejected our credentials.
	ErrFailedAuthentication = errors.New("failed to authenticate with the remote store")

	// ErrConflict indicates the write raced with another writer and the
	// remote refused it.
	ErrConflict = errors.New("remote write conflict")

	// ErrNonSuccessResponse is the catch-all for unexpected remote status codes.
	ErrNonSuccessResponse = errors.New("remote store responded with a non-success status code")
)

// ReadError wraps a failure of ListTree or ListCommits with enough context
// to identify the failing call.
type ReadError struct {
	Operation string
	Path      string
	Err       error
}

func (e ReadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("remote read failed: %s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("remote read failed: %s %q: %v", e.Operation, e.Path, e.Err)
}

func (e ReadError) Unwrap() error {
	return e.Err
}

// WriteError wraps a failure of WriteFile.
type WriteError struct {
	Path string
	Err  error
}

func (e WriteError) Error() string {
	return fmt.Sprintf("remote write failed: %q: %v", e.Path, e.Err)
}

func (e WriteError) Unwrap() error {
	return e.Err
}
