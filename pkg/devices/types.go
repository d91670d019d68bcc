// © Broadcom. All Rights Reserved.
// The term “Broadcom” refers to Broadcom Inc. and/or its subsidiaries.
// SPDX-License-Identifier: Apache-2.0

package devices

import (
	vimtypes "github.com/vmware/govmomi/vim25/types"
)

// AdapterType is the storage adapter type of a virtual disk's controller.
type AdapterType string

const (
	AdapterTypeIDE         = AdapterType(vimtypes.VirtualDiskAdapterTypeIde)
	AdapterTypeLsiLogic    = AdapterType(vimtypes.VirtualDiskAdapterTypeLsiLogic)
	AdapterTypeBusLogic    = AdapterType(vimtypes.VirtualDiskAdapterTypeBusLogic)
	AdapterTypeLsiLogicSAS AdapterType = "lsiLogicsas"
)

// DiskType is the provisioning type of a virtual disk.
type DiskType string

const (
	DiskTypePreallocated     = DiskType(vimtypes.VirtualDiskTypePreallocated)
	DiskTypeThin             = DiskType(vimtypes.VirtualDiskTypeThin)
	DiskTypeEagerZeroedThick = DiskType(vimtypes.VirtualDiskTypeEagerZeroedThick)
	DiskTypeRDM              = DiskType(vimtypes.VirtualDiskTypeRdm)
	DiskTypeRDMP             = DiskType(vimtypes.VirtualDiskTypeRdmp)
)

// ParseDiskType returns the DiskType for s and whether it is a recognized
// value.
func ParseDiskType(s string) (DiskType, bool) {
	switch t := DiskType(s); t {
	case DiskTypePreallocated,
		DiskTypeThin,
		DiskTypeEagerZeroedThick,
		DiskTypeRDM,
		DiskTypeRDMP:

		return t, true
	}
	return DiskType(s), false
}

// IsRawDiskMapping returns true for the disk types backed by a raw LUN.
func (t DiskType) IsRawDiskMapping() bool {
	return t == DiskTypeRDM || t == DiskTypeRDMP
}

// ControllerKind is the kind of a virtual storage controller.
type ControllerKind string

const (
	ControllerKindIDE         ControllerKind = "IDE"
	ControllerKindLsiLogic    ControllerKind = "LSILogic"
	ControllerKindBusLogic    ControllerKind = "BusLogic"
	ControllerKindLsiLogicSAS ControllerKind = "LSILogicSAS"
)

// The server assigns the key of a device when it is added. Until then a
// negative key is used so it never collides with a key the server has
// already assigned.
const (
	// ControllerKey is the key of a controller added alongside a new disk.
	ControllerKey = int32(-101)

	// DiskKey is the key of a new disk.
	DiskKey = int32(-100)

	// NetworkAdapterKey is the key of a new network adapter.
	NetworkAdapterKey = int32(-47)

	// IDEControllerKey is the key of the first of the two IDE controllers
	// present on every VM.
	IDEControllerKey = int32(200)
)
