// © Broadcom. All Rights Reserved.
// The term “Broadcom” refers to Broadcom Inc. and/or its subsidiaries.
// SPDX-License-Identifier: Apache-2.0

package errors

import (
	"errors"
	"fmt"
)

// UnknownDeviceVariantError describes a device, backing, or device list
// payload that is not one of the recognized variants.
//
// The device inspector does not return this error. It skips such devices so
// a scan always yields its partial results.
type UnknownDeviceVariantError struct {
	// Device is the value that was not recognized. It may be nil.
	Device any
}

func (e UnknownDeviceVariantError) Error() string {
	if e.Device == nil {
		return "unknown device variant: <nil>"
	}
	return fmt.Sprintf("unknown device variant: %T", e.Device)
}

// IsUnknownDeviceVariantError returns true if the error or a nested error is
// an UnknownDeviceVariantError.
func IsUnknownDeviceVariantError(err error) bool {
	var unknown UnknownDeviceVariantError
	return errors.As(err, &unknown)
}
