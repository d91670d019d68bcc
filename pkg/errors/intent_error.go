// © Broadcom. All Rights Reserved.
// The term “Broadcom” refers to Broadcom Inc. and/or its subsidiaries.
// SPDX-License-Identifier: Apache-2.0

package errors

import (
	"errors"

	"k8s.io/apimachinery/pkg/util/validation/field"
)

// InvalidIntentError is returned when a VM intent contains values that cannot
// be expressed in a ConfigSpec, ex. a non-positive number of CPUs.
type InvalidIntentError struct {
	Errs field.ErrorList
}

func (e InvalidIntentError) Error() string {
	if len(e.Errs) == 0 {
		return "invalid vm intent"
	}
	return "invalid vm intent: " + e.Errs.ToAggregate().Error()
}

// IsInvalidIntentError returns true if the error or a nested error is an
// InvalidIntentError.
func IsInvalidIntentError(err error) bool {
	var invalid InvalidIntentError
	return errors.As(err, &invalid)
}

// InvalidDiskIntentError is returned when a disk attach intent contains
// values that cannot be expressed in a ConfigSpec, ex. a negative size.
type InvalidDiskIntentError struct {
	Errs field.ErrorList
}

func (e InvalidDiskIntentError) Error() string {
	if len(e.Errs) == 0 {
		return "invalid disk intent"
	}
	return "invalid disk intent: " + e.Errs.ToAggregate().Error()
}

// IsInvalidDiskIntentError returns true if the error or a nested error is an
// InvalidDiskIntentError.
func IsInvalidDiskIntentError(err error) bool {
	var invalid InvalidDiskIntentError
	return errors.As(err, &invalid)
}
