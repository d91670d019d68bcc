// © Broadcom. All Rights Reserved.
// The term “Broadcom” refers to Broadcom Inc. and/or its subsidiaries.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"context"

	"github.com/go-logr/logr"
	ctrllog "sigs.k8s.io/controller-runtime/pkg/log"
)

// FromContextOrDefault returns a Logger from ctx. If no Logger is found, this
// returns the default controller-runtime logger so we at least don't
// accidentally discard logs. Prefer using this over
// logr.FromContextOrDiscard().
func FromContextOrDefault(ctx context.Context) logr.Logger {
	if ctx != nil {
		if logger, err := logr.FromContext(ctx); err == nil {
			return logger
		}
	}
	return ctrllog.Log.WithName("DEFAULT")
}

// SensitiveValue returns value when logging of sensitive data is allowed,
// otherwise a redacted placeholder.
func SensitiveValue(allowed bool, value string) string {
	if allowed || value == "" {
		return value
	}
	return "<redacted>"
}
