// © Broadcom. All Rights Reserved.
// The term “Broadcom” refers to Broadcom Inc. and/or its subsidiaries.
// SPDX-License-Identifier: Apache-2.0

package devspec

import (
	"context"

	vimtypes "github.com/vmware/govmomi/vim25/types"
	"k8s.io/utils/ptr"

	pkgcfg "github.com/vmware-tanzu/vm-devspec/pkg/config"
	"github.com/vmware-tanzu/vm-devspec/pkg/devices"
	pkgerr "github.com/vmware-tanzu/vm-devspec/pkg/errors"
	"github.com/vmware-tanzu/vm-devspec/pkg/metrics"
)

// BuildDiskAttachSpec returns the ConfigSpec that adds the disk described by
// the intent to a VM.
//
// When the intent does not name a controller, IDE disks are placed on the
// first of the VM's built-in IDE controllers. Any other adapter type gets a
// new controller, which precedes the disk in the device changes.
//
// The backing file is created when the intent has no file path or is a
// linked clone. A linked clone's backing has an empty file name and the
// backing at the file path as its parent.
func BuildDiskAttachSpec(
	ctx context.Context,
	intent DiskAttachIntent) (vimtypes.VirtualMachineConfigSpec, error) {

	strict := pkgcfg.FromContextOrDefault(ctx).StrictDiskType
	if allErrs := intent.validate(strict); len(allErrs) > 0 {
		return vimtypes.VirtualMachineConfigSpec{}, pkgerr.InvalidDiskIntentError{Errs: allErrs}
	}

	logger := builderLogger(ctx)

	var deviceChange []vimtypes.BaseVirtualDeviceConfigSpec

	controllerKey := ptr.Deref(intent.ControllerKey, 0)
	if intent.ControllerKey == nil {
		if intent.AdapterType == devices.AdapterTypeIDE {
			controllerKey = devices.IDEControllerKey
		} else {
			controllerKey = devices.ControllerKey
			deviceChange = append(deviceChange, BuildControllerSpec(
				ctx,
				devices.ControllerKindForAdapterType(intent.AdapterType),
				controllerKey,
				0))
		}
	}

	diskType := devices.DiskTypePreallocated
	if intent.DiskType != "" {
		t, ok := devices.ParseDiskType(intent.DiskType)
		if !ok {
			logger.V(4).Info("Unrecognized disk type, using a preallocated backing",
				"diskType", intent.DiskType)
		}
		diskType = t
	}

	backing, err := newDiskBacking(intent, diskType)
	if err != nil {
		return vimtypes.VirtualMachineConfigSpec{}, err
	}

	disk := devices.NewDisk(
		devices.DiskKey,
		controllerKey,
		ptr.Deref(intent.UnitNumber, 0),
		ptr.Deref(intent.DiskSizeKB, 0),
		backing)

	createFile := intent.FilePath == nil || intent.LinkedClone
	deviceChange = append(deviceChange, newDiskAttachDeviceSpec(disk, createFile))

	logger.V(4).Info("Built disk attach spec",
		"adapterType", intent.AdapterType,
		"diskType", diskType,
		"controllerKey", controllerKey,
		"linkedClone", intent.LinkedClone,
		"createFile", createFile)
	specBuilt(logger, metrics.SpecKindDiskAttach)

	return vimtypes.VirtualMachineConfigSpec{
		DeviceChange: deviceChange,
	}, nil
}

// BuildDiskDetachSpec returns the ConfigSpec that removes an existing disk
// from a VM and destroys its backing file. The device is used as is.
func BuildDiskDetachSpec(
	ctx context.Context,
	device vimtypes.BaseVirtualDevice) vimtypes.VirtualMachineConfigSpec {

	logger := builderLogger(ctx)
	if device != nil {
		logger.V(4).Info("Built disk detach spec", "deviceKey", device.GetVirtualDevice().Key)
	}
	specBuilt(logger, metrics.SpecKindDiskDetach)

	return vimtypes.VirtualMachineConfigSpec{
		DeviceChange: []vimtypes.BaseVirtualDeviceConfigSpec{
			&vimtypes.VirtualDeviceConfigSpec{
				Operation:     vimtypes.VirtualDeviceConfigSpecOperationRemove,
				FileOperation: vimtypes.VirtualDeviceConfigSpecFileOperationDestroy,
				Device:        device,
			},
		},
	}
}

func newDiskBacking(
	intent DiskAttachIntent,
	diskType devices.DiskType) (vimtypes.BaseVirtualDeviceBackingInfo, error) {

	fileName := ptr.Deref(intent.FilePath, "")

	var backing vimtypes.BaseVirtualDeviceBackingInfo
	if diskType.IsRawDiskMapping() {
		backing = devices.NewRawDiskMappingBacking(fileName, intent.DeviceName, diskType)
	} else {
		backing = devices.NewFlatBacking(fileName, diskType)
	}

	if !intent.LinkedClone {
		return backing, nil
	}
	return devices.NewLinkedCloneBacking(backing)
}

func newDiskAttachDeviceSpec(
	disk *vimtypes.VirtualDisk,
	createFile bool) *vimtypes.VirtualDeviceConfigSpec {

	spec := &vimtypes.VirtualDeviceConfigSpec{
		Operation: vimtypes.VirtualDeviceConfigSpecOperationAdd,
		Device:    disk,
	}
	if createFile {
		spec.FileOperation = vimtypes.VirtualDeviceConfigSpecFileOperationCreate
	}
	return spec
}
