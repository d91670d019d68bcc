// © Broadcom. All Rights Reserved.
// The term “Broadcom” refers to Broadcom Inc. and/or its subsidiaries.
// SPDX-License-Identifier: Apache-2.0

package devspec

import (
	"context"

	vimtypes "github.com/vmware/govmomi/vim25/types"

	"github.com/vmware-tanzu/vm-devspec/pkg/devices"
	"github.com/vmware-tanzu/vm-devspec/pkg/metrics"
)

// BuildControllerSpec returns the device change that adds a new controller.
// SCSI controllers are never shared.
func BuildControllerSpec(
	ctx context.Context,
	kind devices.ControllerKind,
	key, busNumber int32) *vimtypes.VirtualDeviceConfigSpec {

	logger := builderLogger(ctx)
	logger.V(4).Info("Built controller spec",
		"kind", kind, "key", key, "busNumber", busNumber)
	specBuilt(logger, metrics.SpecKindController)

	return &vimtypes.VirtualDeviceConfigSpec{
		Operation: vimtypes.VirtualDeviceConfigSpecOperationAdd,
		Device:    devices.NewController(kind, key, busNumber),
	}
}
