// © Broadcom. All Rights Reserved.
// The term “Broadcom” refers to Broadcom Inc. and/or its subsidiaries.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"github.com/vmware-tanzu/vm-devspec/pkg"
)

// DefaultGuestID is the guest ID of a VM whose guest OS is not known.
const DefaultGuestID = "otherGuest"

// Default returns a Config object with default values.
func Default() Config {
	return Config{
		BuildCommit:  pkg.BuildCommit,
		BuildNumber:  pkg.BuildNumber,
		BuildVersion: pkg.BuildVersion,
		BuildType:    pkg.BuildType,

		DefaultGuestID:   DefaultGuestID,
		StrictDiskType:   false,
		LogSensitiveData: false,
	}
}
