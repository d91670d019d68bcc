// © Broadcom. All Rights Reserved.
// The term “Broadcom” refers to Broadcom Inc. and/or its subsidiaries.
// SPDX-License-Identifier: Apache-2.0

package errors

import (
	"errors"
	"fmt"
)

// MalformedPathError is returned when a datastore path does not contain a
// bracketed datastore segment, ex. "[datastore1] folder/disk.vmdk".
type MalformedPathError struct {
	Path string
}

func (e MalformedPathError) Error() string {
	return fmt.Sprintf("malformed datastore path %q", e.Path)
}

// IsMalformedPathError returns true if the error or a nested error is a
// MalformedPathError.
func IsMalformedPathError(err error) bool {
	var malformed MalformedPathError
	return errors.As(err, &malformed)
}
