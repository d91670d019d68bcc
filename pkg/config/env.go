// © Broadcom. All Rights Reserved.
// The term “Broadcom” refers to Broadcom Inc. and/or its subsidiaries.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"strconv"

	"github.com/vmware-tanzu/vm-devspec/pkg/config/env"
)

// FromEnv returns a new Config that has been initialized from environment
// variables.
func FromEnv() Config {
	config := Default()

	setString(env.DefaultGuestID, &config.DefaultGuestID)
	setBool(env.StrictDiskType, &config.StrictDiskType)
	setBool(env.LogSensitiveData, &config.LogSensitiveData)

	return config
}

func setBool(n env.VarName, p *bool) {
	if v := os.Getenv(n.String()); v != "" {
		if v, err := strconv.ParseBool(v); err == nil {
			*p = v
		}
	}
}

func setString(n env.VarName, p *string) {
	if v := os.Getenv(n.String()); v != "" {
		*p = v
	}
}
