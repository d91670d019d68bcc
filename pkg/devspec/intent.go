// © Broadcom. All Rights Reserved.
// The term “Broadcom” refers to Broadcom Inc. and/or its subsidiaries.
// SPDX-License-Identifier: Apache-2.0

package devspec

import (
	"github.com/google/uuid"
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/vmware-tanzu/vm-devspec/pkg/devices"
)

// DistributedVirtualPortgroupType is the managed object type of a network
// that lives on a distributed virtual switch.
const DistributedVirtualPortgroupType = "DistributedVirtualPortgroup"

// VMIntent describes a VM to be created.
type VMIntent struct {
	Name    string
	GuestID string

	NumCPUs  int32
	MemoryMB int64

	// DatastoreName is the datastore the VM's files are placed on.
	DatastoreName string

	// InstanceUUID is optional. When set it must be a valid UUID.
	InstanceUUID string

	VIFs []VIFInfo
}

// NetworkRef identifies the network a VIF is attached to.
type NetworkRef struct {
	// Type is the managed object type of the network, ex.
	// "Network" or "DistributedVirtualPortgroup".
	Type string

	SwitchUUID   string
	PortgroupKey string
}

func (r *NetworkRef) isDistributed() bool {
	return r != nil && r.Type == DistributedVirtualPortgroupType
}

// VIFInfo describes a network adapter to add to a VM.
type VIFInfo struct {
	NetworkName string
	MACAddress  string
	NetworkRef  *NetworkRef
}

// DiskAttachIntent describes a disk to add to an existing VM.
type DiskAttachIntent struct {
	// AdapterType is the type of controller the disk is attached to. When
	// ControllerKey is nil a new controller of this type is added, unless
	// the type is IDE.
	AdapterType devices.AdapterType

	// DiskType is the provisioning type of the disk. An empty value means
	// preallocated.
	DiskType string

	// FilePath is the datastore path of the disk's backing file. When nil a
	// new backing file is created.
	FilePath *string

	DiskSizeKB *int64

	// LinkedClone causes the disk to be created as a child of the backing
	// at FilePath.
	LinkedClone bool

	ControllerKey *int32
	UnitNumber    *int32

	// DeviceName is the host device of a raw disk mapping.
	DeviceName string
}

func (i VMIntent) validate() field.ErrorList {
	var allErrs field.ErrorList

	if i.Name == "" {
		allErrs = append(allErrs, field.Required(field.NewPath("name"), ""))
	}
	if i.NumCPUs <= 0 {
		allErrs = append(allErrs, field.Invalid(
			field.NewPath("numCPUs"), i.NumCPUs, "must be greater than zero"))
	}
	if i.MemoryMB <= 0 {
		allErrs = append(allErrs, field.Invalid(
			field.NewPath("memoryMB"), i.MemoryMB, "must be greater than zero"))
	}
	if i.DatastoreName == "" {
		allErrs = append(allErrs, field.Required(field.NewPath("datastoreName"), ""))
	}
	if i.InstanceUUID != "" {
		if _, err := uuid.Parse(i.InstanceUUID); err != nil {
			allErrs = append(allErrs, field.Invalid(
				field.NewPath("instanceUUID"), i.InstanceUUID, err.Error()))
		}
	}

	vifsPath := field.NewPath("vifs")
	for idx, vif := range i.VIFs {
		if !vif.NetworkRef.isDistributed() {
			continue
		}
		refPath := vifsPath.Index(idx).Child("networkRef")
		if vif.NetworkRef.SwitchUUID == "" {
			allErrs = append(allErrs, field.Required(refPath.Child("switchUUID"), ""))
		}
		if vif.NetworkRef.PortgroupKey == "" {
			allErrs = append(allErrs, field.Required(refPath.Child("portgroupKey"), ""))
		}
	}

	return allErrs
}

func (i DiskAttachIntent) validate(strictDiskType bool) field.ErrorList {
	var allErrs field.ErrorList

	if i.DiskSizeKB != nil && *i.DiskSizeKB < 0 {
		allErrs = append(allErrs, field.Invalid(
			field.NewPath("diskSizeKB"), *i.DiskSizeKB, "must not be negative"))
	}
	if strictDiskType && i.DiskType != "" {
		if _, ok := devices.ParseDiskType(i.DiskType); !ok {
			allErrs = append(allErrs, field.NotSupported(
				field.NewPath("diskType"),
				i.DiskType,
				[]string{
					string(devices.DiskTypePreallocated),
					string(devices.DiskTypeThin),
					string(devices.DiskTypeEagerZeroedThick),
					string(devices.DiskTypeRDM),
					string(devices.DiskTypeRDMP),
				}))
		}
	}

	return allErrs
}
