// © Broadcom. All Rights Reserved.
// The term “Broadcom” refers to Broadcom Inc. and/or its subsidiaries.
// SPDX-License-Identifier: Apache-2.0

package devinspect

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	vimtypes "github.com/vmware/govmomi/vim25/types"

	"github.com/vmware-tanzu/vm-devspec/pkg/devices"
	pkglog "github.com/vmware-tanzu/vm-devspec/pkg/log"
	"github.com/vmware-tanzu/vm-devspec/pkg/metrics"
)

// DiskLocation is the backing file of a VM's disk and the type of the
// adapter the disk is attached to.
type DiskLocation struct {
	FilePath string

	// AdapterType is empty when the disk's controller is not in the device
	// list.
	AdapterType devices.AdapterType
}

// DiskTopology describes a VM's disk and the highest unit number used by any
// of the VM's disks.
type DiskTopology struct {
	FilePath      string
	ControllerKey int32
	AdapterType   devices.AdapterType
	DiskType      devices.DiskType

	// MaxUnitNumber is the highest unit number of all the disks, or zero if
	// there are none.
	MaxUnitNumber int32
}

// ExtractDiskLocation returns the location of the first disk in the device
// list that has a flat backing. False is returned when there is no such disk.
func ExtractDiskLocation(
	ctx context.Context,
	devs []vimtypes.BaseVirtualDevice) (DiskLocation, bool) {

	s := scanDevices(ctx, devs)
	if s.disk == nil {
		return DiskLocation{}, false
	}
	return DiskLocation{
		FilePath:    s.backing.FileName,
		AdapterType: s.adapterTypes[s.disk.ControllerKey],
	}, true
}

// ExtractDiskTopology returns the topology of the first disk in the device
// list that has a flat backing. False is returned when there is no such disk,
// in which case only MaxUnitNumber is set.
func ExtractDiskTopology(
	ctx context.Context,
	devs []vimtypes.BaseVirtualDevice) (DiskTopology, bool) {

	s := scanDevices(ctx, devs)
	if s.disk == nil {
		return DiskTopology{MaxUnitNumber: s.maxUnitNumber}, false
	}
	return DiskTopology{
		FilePath:      s.backing.FileName,
		ControllerKey: s.disk.ControllerKey,
		AdapterType:   s.adapterTypes[s.disk.ControllerKey],
		DiskType:      devices.DiskTypeOf(s.backing),
		MaxUnitNumber: s.maxUnitNumber,
	}, true
}

// FindRawMapping returns the first disk in the device list that is a raw
// mapping of the LUN, or nil.
func FindRawMapping(
	ctx context.Context,
	devs []vimtypes.BaseVirtualDevice,
	lunUUID string) *vimtypes.VirtualDisk {

	disks := devices.SelectDevicesByDeviceAndBackingType[
		*vimtypes.VirtualDisk,
		*vimtypes.VirtualDiskRawDiskMappingVer1BackingInfo,
	](devs)

	for _, disk := range disks {
		backing := disk.Backing.(*vimtypes.VirtualDiskRawDiskMappingVer1BackingInfo)
		if backing.LunUuid == lunUUID {
			return disk
		}
	}

	inspectorLogger(ctx).V(5).Info("No raw disk mapping for LUN", "lunUUID", lunUUID)
	return nil
}

// AdapterTypesByControllerKey returns the adapter type of each disk
// controller in the device list, keyed by the controller's device key.
func AdapterTypesByControllerKey(
	devs []vimtypes.BaseVirtualDevice) map[int32]devices.AdapterType {

	adapterTypes := map[int32]devices.AdapterType{}
	for _, ctrl := range devices.SelectDiskControllers(devs) {
		adapterType, _ := devices.AdapterTypeForController(ctrl)
		adapterTypes[ctrl.GetVirtualDevice().Key] = adapterType
	}
	return adapterTypes
}

type scanResult struct {
	disk          *vimtypes.VirtualDisk
	backing       *vimtypes.VirtualDiskFlatVer2BackingInfo
	adapterTypes  map[int32]devices.AdapterType
	maxUnitNumber int32
}

func inspectorLogger(ctx context.Context) logr.Logger {
	return pkglog.FromContextOrDefault(ctx).WithName("devinspect")
}

func scanDevices(
	ctx context.Context,
	devs []vimtypes.BaseVirtualDevice) scanResult {

	logger := inspectorLogger(ctx)
	m := metrics.NewDeviceSpecMetrics()

	s := scanResult{
		adapterTypes: AdapterTypesByControllerKey(devs),
	}

	for i, dev := range devs {
		if dev == nil {
			logger.V(5).Info("Skipping nil device", "index", i)
			m.RegisterDeviceSkipped(logger, metrics.SkipReasonNilDevice)
			continue
		}

		disk, ok := dev.(*vimtypes.VirtualDisk)
		if !ok {
			continue
		}

		if un := disk.UnitNumber; un != nil && *un > s.maxUnitNumber {
			s.maxUnitNumber = *un
		}

		switch backing := disk.Backing.(type) {
		case *vimtypes.VirtualDiskFlatVer2BackingInfo:
			if s.disk == nil {
				s.disk = disk
				s.backing = backing
			}
		case *vimtypes.VirtualDiskRawDiskMappingVer1BackingInfo:
			// Located by FindRawMapping.
		default:
			logger.V(5).Info("Skipping disk with unrecognized backing",
				"index", i,
				"deviceKey", disk.Key,
				"backingType", fmt.Sprintf("%T", backing))
			m.RegisterDeviceSkipped(logger, metrics.SkipReasonUnknownBacking)
		}
	}

	return s
}
