// © Broadcom. All Rights Reserved.
// The term “Broadcom” refers to Broadcom Inc. and/or its subsidiaries.
// SPDX-License-Identifier: Apache-2.0

package config

// Config represents the internal configuration of the device spec builder.
// It should only be read/written via the context functions.
//
// Please note that all fields in this type MUST be types that are copied by
// value, not reference. That means no string slices, maps, etc. The reason is
// to prevent the possibility of race conditions when reading/writing data to
// a Config instance stored in a context.
type Config struct {
	BuildCommit  string
	BuildNumber  string
	BuildVersion string
	BuildType    string

	// DefaultGuestID is the guest ID used when a VM intent does not specify
	// one.
	//
	// Defaults to "otherGuest".
	DefaultGuestID string

	// StrictDiskType causes a disk attach intent with an unrecognized disk
	// type to be rejected with an InvalidDiskIntentError. When false, an
	// unrecognized disk type is attached with a preallocated backing.
	//
	// Defaults to false.
	StrictDiskType bool

	// LogSensitiveData allows MAC addresses and machine IDs to appear in
	// log messages.
	LogSensitiveData bool
}
