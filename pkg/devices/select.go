// © Broadcom. All Rights Reserved.
// The term “Broadcom” refers to Broadcom Inc. and/or its subsidiaries.
// SPDX-License-Identifier: Apache-2.0

package devices

import (
	vimtypes "github.com/vmware/govmomi/vim25/types"
)

// SelectDevicesByType returns a slice of the devices that are of type T.
func SelectDevicesByType[T vimtypes.BaseVirtualDevice](
	devices []vimtypes.BaseVirtualDevice,
) []T {

	var selectedDevices []T
	for i := range devices {
		if t, ok := devices[i].(T); ok {
			selectedDevices = append(selectedDevices, t)
		}
	}
	return selectedDevices
}

// SelectDevicesByDeviceAndBackingType returns a slice of the devices that are
// of type T with a backing of type B.
func SelectDevicesByDeviceAndBackingType[
	T vimtypes.BaseVirtualDevice,
	B vimtypes.BaseVirtualDeviceBackingInfo,
](
	devices []vimtypes.BaseVirtualDevice,
) []T {

	var selectedDevices []T
	for i := range devices {
		if t, ok := devices[i].(T); ok {
			if dev := t.GetVirtualDevice(); dev != nil {
				if _, ok := dev.Backing.(B); ok {
					selectedDevices = append(selectedDevices, t)
				}
			}
		}
	}
	return selectedDevices
}

// SelectDiskControllers returns the storage controllers in devices for which
// an adapter type is known.
func SelectDiskControllers(
	devices []vimtypes.BaseVirtualDevice,
) []vimtypes.BaseVirtualDevice {

	var controllers []vimtypes.BaseVirtualDevice
	for i := range devices {
		if _, ok := AdapterTypeForController(devices[i]); ok {
			controllers = append(controllers, devices[i])
		}
	}
	return controllers
}
