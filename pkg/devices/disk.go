// © Broadcom. All Rights Reserved.
// The term “Broadcom” refers to Broadcom Inc. and/or its subsidiaries.
// SPDX-License-Identifier: Apache-2.0

package devices

import (
	vimtypes "github.com/vmware/govmomi/vim25/types"
	"k8s.io/utils/ptr"

	pkgerr "github.com/vmware-tanzu/vm-devspec/pkg/errors"
)

// NewFlatBacking returns a persistent flat file backing. Thin disks set
// ThinProvisioned, eager zeroed thick disks set EagerlyScrub, and every other
// disk type leaves both unset.
func NewFlatBacking(
	fileName string,
	diskType DiskType) *vimtypes.VirtualDiskFlatVer2BackingInfo {

	backing := &vimtypes.VirtualDiskFlatVer2BackingInfo{
		VirtualDeviceFileBackingInfo: vimtypes.VirtualDeviceFileBackingInfo{
			FileName: fileName,
		},
		DiskMode: string(vimtypes.VirtualDiskModePersistent),
	}

	switch diskType {
	case DiskTypeThin:
		backing.ThinProvisioned = ptr.To(true)
	case DiskTypeEagerZeroedThick:
		backing.EagerlyScrub = ptr.To(true)
	}

	return backing
}

// NewRawDiskMappingBacking returns an independent persistent raw disk mapping
// backing. The rdm disk type maps the LUN in virtual compatibility mode and
// every other type in physical compatibility mode.
func NewRawDiskMappingBacking(
	fileName, deviceName string,
	diskType DiskType) *vimtypes.VirtualDiskRawDiskMappingVer1BackingInfo {

	compatMode := vimtypes.VirtualDiskCompatibilityModePhysicalMode
	if diskType == DiskTypeRDM {
		compatMode = vimtypes.VirtualDiskCompatibilityModeVirtualMode
	}

	return &vimtypes.VirtualDiskRawDiskMappingVer1BackingInfo{
		VirtualDeviceFileBackingInfo: vimtypes.VirtualDeviceFileBackingInfo{
			FileName: fileName,
		},
		CompatibilityMode: string(compatMode),
		DiskMode:          string(vimtypes.VirtualDiskModeIndependent_persistent),
		DeviceName:        deviceName,
	}
}

// NewLinkedCloneBacking returns a new backing of the same type as parent with
// an empty file name, whose Parent is a copy of parent. The returned backing
// shares no pointers with parent.
func NewLinkedCloneBacking(
	parent vimtypes.BaseVirtualDeviceBackingInfo) (vimtypes.BaseVirtualDeviceBackingInfo, error) {

	switch p := parent.(type) {
	case *vimtypes.VirtualDiskFlatVer2BackingInfo:
		owned := copyFlatBacking(p)
		child := copyFlatBacking(p)
		child.FileName = ""
		child.Parent = owned
		return child, nil

	case *vimtypes.VirtualDiskRawDiskMappingVer1BackingInfo:
		owned := *p
		child := *p
		child.FileName = ""
		child.Parent = &owned
		return &child, nil
	}

	return nil, pkgerr.UnknownDeviceVariantError{Device: parent}
}

func copyFlatBacking(
	in *vimtypes.VirtualDiskFlatVer2BackingInfo) *vimtypes.VirtualDiskFlatVer2BackingInfo {

	out := *in
	if in.ThinProvisioned != nil {
		out.ThinProvisioned = ptr.To(*in.ThinProvisioned)
	}
	if in.EagerlyScrub != nil {
		out.EagerlyScrub = ptr.To(*in.EagerlyScrub)
	}
	return &out
}

// NewDisk returns a connected virtual disk on the given controller.
func NewDisk(
	key, controllerKey, unitNumber int32,
	capacityKB int64,
	backing vimtypes.BaseVirtualDeviceBackingInfo) *vimtypes.VirtualDisk {

	return &vimtypes.VirtualDisk{
		VirtualDevice: vimtypes.VirtualDevice{
			Key:           key,
			Backing:       backing,
			ControllerKey: controllerKey,
			UnitNumber:    ptr.To(unitNumber),
			Connectable: &vimtypes.VirtualDeviceConnectInfo{
				StartConnected:    true,
				AllowGuestControl: false,
				Connected:         true,
			},
		},
		CapacityInKB: capacityKB,
	}
}

// DiskTypeOf returns the disk type described by the provisioning flags of a
// flat backing.
func DiskTypeOf(backing *vimtypes.VirtualDiskFlatVer2BackingInfo) DiskType {
	switch {
	case ptr.Deref(backing.ThinProvisioned, false):
		return DiskTypeThin
	case ptr.Deref(backing.EagerlyScrub, false):
		return DiskTypeEagerZeroedThick
	default:
		return DiskTypePreallocated
	}
}
