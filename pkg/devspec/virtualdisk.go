// © Broadcom. All Rights Reserved.
// The term “Broadcom” refers to Broadcom Inc. and/or its subsidiaries.
// SPDX-License-Identifier: Apache-2.0

package devspec

import (
	"context"

	vimtypes "github.com/vmware/govmomi/vim25/types"
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/vmware-tanzu/vm-devspec/pkg/devices"
	pkgerr "github.com/vmware-tanzu/vm-devspec/pkg/errors"
	"github.com/vmware-tanzu/vm-devspec/pkg/metrics"
)

// BuildVirtualDiskCopySpec returns the spec of the destination disk of a
// virtual disk copy. An empty adapter type means LSI Logic and an empty disk
// type means preallocated.
func BuildVirtualDiskCopySpec(
	ctx context.Context,
	adapterType devices.AdapterType,
	diskType devices.DiskType) *vimtypes.VirtualDiskSpec {

	spec := newVirtualDiskSpec(adapterType, diskType, devices.DiskTypePreallocated)

	logger := builderLogger(ctx)
	logger.V(4).Info("Built virtual disk copy spec",
		"adapterType", spec.AdapterType, "diskType", spec.DiskType)
	specBuilt(logger, metrics.SpecKindVirtualDiskCopy)

	return &spec
}

// BuildVirtualDiskCreateSpec returns the spec of a new file backed virtual
// disk of the given size.
func BuildVirtualDiskCreateSpec(
	ctx context.Context,
	sizeKB int64,
	adapterType devices.AdapterType,
	diskType devices.DiskType) (*vimtypes.FileBackedVirtualDiskSpec, error) {

	if sizeKB < 0 {
		return nil, pkgerr.InvalidDiskIntentError{
			Errs: field.ErrorList{
				field.Invalid(field.NewPath("sizeKB"), sizeKB, "must not be negative"),
			},
		}
	}

	spec := &vimtypes.FileBackedVirtualDiskSpec{
		VirtualDiskSpec: newVirtualDiskSpec(adapterType, diskType, devices.DiskTypePreallocated),
		CapacityKb:      sizeKB,
	}

	logger := builderLogger(ctx)
	logger.V(4).Info("Built virtual disk create spec",
		"adapterType", spec.AdapterType, "diskType", spec.DiskType, "sizeKB", sizeKB)
	specBuilt(logger, metrics.SpecKindVirtualDiskCreate)

	return spec, nil
}

// BuildRDMCreateSpec returns the spec of a new virtual disk mapped to the
// host device. An empty disk type means a physical mode mapping.
func BuildRDMCreateSpec(
	ctx context.Context,
	device string,
	adapterType devices.AdapterType,
	diskType devices.DiskType) *vimtypes.DeviceBackedVirtualDiskSpec {

	spec := &vimtypes.DeviceBackedVirtualDiskSpec{
		VirtualDiskSpec: newVirtualDiskSpec(adapterType, diskType, devices.DiskTypeRDMP),
		Device:          device,
	}

	logger := builderLogger(ctx)
	logger.V(4).Info("Built RDM create spec",
		"adapterType", spec.AdapterType, "diskType", spec.DiskType, "device", device)
	specBuilt(logger, metrics.SpecKindRawDiskMappingCreate)

	return spec
}

func newVirtualDiskSpec(
	adapterType devices.AdapterType,
	diskType, defaultDiskType devices.DiskType) vimtypes.VirtualDiskSpec {

	if adapterType == "" {
		adapterType = devices.AdapterTypeLsiLogic
	}
	if diskType == "" {
		diskType = defaultDiskType
	}
	return vimtypes.VirtualDiskSpec{
		AdapterType: string(adapterType),
		DiskType:    string(diskType),
	}
}
