// © Broadcom. All Rights Reserved.
// The term “Broadcom” refers to Broadcom Inc. and/or its subsidiaries.
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"os"
)

// VarName is the name of an environment variable.
type VarName uint8

const (
	_varNameBegin VarName = iota

	DefaultGuestID
	StrictDiskType
	LogSensitiveData

	_varNameEnd
)

// Unset unsets all environment variables read by FromEnv.
func Unset() {
	for _, n := range All() {
		// os.Unsetenv cannot return an error on Linux.
		_ = os.Unsetenv(n.String())
	}
}

// All returns all of the environment variable names.
func All() []VarName {
	all := make([]VarName, _varNameEnd-1)
	i := 0
	for n := _varNameBegin + 1; n < _varNameEnd; n++ {
		all[i] = n
		i++
	}
	return all
}

// String returns the stringified version of the environment variable name.
func (n VarName) String() string {
	switch n {
	case DefaultGuestID:
		return "DEFAULT_GUEST_ID"
	case StrictDiskType:
		return "STRICT_DISK_TYPE"
	case LogSensitiveData:
		return "LOG_SENSITIVE_DATA"
	}
	panic("unknown environment variable")
}
