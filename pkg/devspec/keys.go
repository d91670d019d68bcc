// © Broadcom. All Rights Reserved.
// The term “Broadcom” refers to Broadcom Inc. and/or its subsidiaries.
// SPDX-License-Identifier: Apache-2.0

package devspec

import (
	vimtypes "github.com/vmware/govmomi/vim25/types"
)

// UniquifyDeviceKeys gives every device in the ConfigSpec's device changes
// that shares a negative key with an earlier device a new, unused negative
// key. A device whose controller key refers to a renumbered device is
// updated to refer to the closest preceding device that had that key.
//
// The ConfigSpec is modified in place. Positive keys are left untouched.
func UniquifyDeviceKeys(configSpec *vimtypes.VirtualMachineConfigSpec) {
	if configSpec == nil {
		return
	}

	nextKey := int32(-1)
	forEachDevice(configSpec, func(dev *vimtypes.VirtualDevice) {
		if dev.Key <= nextKey {
			nextKey = dev.Key - 1
		}
	})

	seen := map[int32]struct{}{}
	latest := map[int32]int32{}

	forEachDevice(configSpec, func(dev *vimtypes.VirtualDevice) {
		if dev.ControllerKey < 0 {
			if key, ok := latest[dev.ControllerKey]; ok {
				dev.ControllerKey = key
			}
		}

		if dev.Key >= 0 {
			return
		}

		originalKey := dev.Key
		if _, ok := seen[originalKey]; ok {
			dev.Key = nextKey
			nextKey--
		}
		seen[dev.Key] = struct{}{}
		latest[originalKey] = dev.Key
	})
}

func forEachDevice(
	configSpec *vimtypes.VirtualMachineConfigSpec,
	fn func(dev *vimtypes.VirtualDevice)) {

	for i := range configSpec.DeviceChange {
		if configSpec.DeviceChange[i] == nil {
			continue
		}
		spec := configSpec.DeviceChange[i].GetVirtualDeviceConfigSpec()
		if spec == nil || spec.Device == nil {
			continue
		}
		if dev := spec.Device.GetVirtualDevice(); dev != nil {
			fn(dev)
		}
	}
}
