// © Broadcom. All Rights Reserved.
// The term “Broadcom” refers to Broadcom Inc. and/or its subsidiaries.
// SPDX-License-Identifier: Apache-2.0

package devices

import (
	vimtypes "github.com/vmware/govmomi/vim25/types"
)

// NewController returns a controller of the given kind. SCSI controllers do
// not share their bus.
func NewController(
	kind ControllerKind,
	key, busNumber int32) vimtypes.BaseVirtualDevice {

	ctrl := vimtypes.VirtualController{
		VirtualDevice: vimtypes.VirtualDevice{
			Key: key,
		},
		BusNumber: busNumber,
	}
	scsi := vimtypes.VirtualSCSIController{
		VirtualController: ctrl,
		SharedBus:         vimtypes.VirtualSCSISharingNoSharing,
	}

	switch kind {
	case ControllerKindIDE:
		return &vimtypes.VirtualIDEController{VirtualController: ctrl}
	case ControllerKindBusLogic:
		return &vimtypes.VirtualBusLogicController{VirtualSCSIController: scsi}
	case ControllerKindLsiLogicSAS:
		return &vimtypes.VirtualLsiLogicSASController{VirtualSCSIController: scsi}
	default:
		return &vimtypes.VirtualLsiLogicController{VirtualSCSIController: scsi}
	}
}

// ControllerKindForAdapterType returns the kind of controller that hosts disks
// of the given adapter type. Unrecognized adapter types get an LSI Logic
// controller.
func ControllerKindForAdapterType(adapterType AdapterType) ControllerKind {
	switch adapterType {
	case AdapterTypeIDE:
		return ControllerKindIDE
	case AdapterTypeBusLogic:
		return ControllerKindBusLogic
	case AdapterTypeLsiLogicSAS:
		return ControllerKindLsiLogicSAS
	default:
		return ControllerKindLsiLogic
	}
}

// AdapterTypeForController returns the adapter type reported for disks
// attached to dev, and false if dev is not a recognized storage controller.
// LSI Logic SAS controllers are reported as lsiLogic.
func AdapterTypeForController(dev vimtypes.BaseVirtualDevice) (AdapterType, bool) {
	switch dev.(type) {
	case *vimtypes.VirtualIDEController:
		return AdapterTypeIDE, true
	case *vimtypes.VirtualLsiLogicController, *vimtypes.VirtualLsiLogicSASController:
		return AdapterTypeLsiLogic, true
	case *vimtypes.VirtualBusLogicController:
		return AdapterTypeBusLogic, true
	}
	return "", false
}
