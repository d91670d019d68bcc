// © Broadcom. All Rights Reserved.
// The term “Broadcom” refers to Broadcom Inc. and/or its subsidiaries.
// SPDX-License-Identifier: Apache-2.0

package devspec

import (
	"context"

	"github.com/go-logr/logr"
	vimtypes "github.com/vmware/govmomi/vim25/types"
	"k8s.io/utils/ptr"

	pkgcfg "github.com/vmware-tanzu/vm-devspec/pkg/config"
	"github.com/vmware-tanzu/vm-devspec/pkg/devices"
	pkgerr "github.com/vmware-tanzu/vm-devspec/pkg/errors"
	pkglog "github.com/vmware-tanzu/vm-devspec/pkg/log"
	"github.com/vmware-tanzu/vm-devspec/pkg/metrics"
	"github.com/vmware-tanzu/vm-devspec/pkg/util/vsphere/datastore"
)

const (
	// MachineIDKey is the extra config key of the guest machine identity.
	MachineIDKey = "machine.id"

	dummyVMNumCPUs     = 1
	dummyVMMemoryMB    = 4
	dummyVMDiskSizeKB  = 1024
	dummyVMAdapterType = devices.AdapterTypeLsiLogic
)

func builderLogger(ctx context.Context) logr.Logger {
	return pkglog.FromContextOrDefault(ctx).WithName("devspec")
}

func specBuilt(logger logr.Logger, kind metrics.SpecKind) {
	metrics.NewDeviceSpecMetrics().RegisterSpecBuilt(logger, kind)
}

// BuildCreateVMSpec returns the ConfigSpec used to create the VM described
// by the intent. A network adapter is added for each of the intent's VIFs.
func BuildCreateVMSpec(
	ctx context.Context,
	intent VMIntent) (vimtypes.VirtualMachineConfigSpec, error) {

	if allErrs := intent.validate(); len(allErrs) > 0 {
		return vimtypes.VirtualMachineConfigSpec{}, pkgerr.InvalidIntentError{Errs: allErrs}
	}

	guestID := intent.GuestID
	if guestID == "" {
		guestID = pkgcfg.FromContextOrDefault(ctx).DefaultGuestID
	}
	if guestID == "" {
		guestID = pkgcfg.DefaultGuestID
	}

	configSpec := newVMConfigSpec(
		intent.Name,
		guestID,
		intent.DatastoreName,
		intent.NumCPUs,
		intent.MemoryMB)
	configSpec.InstanceUuid = intent.InstanceUUID

	for i := range intent.VIFs {
		configSpec.DeviceChange = append(
			configSpec.DeviceChange,
			BuildNetworkAdapterSpec(ctx, intent.VIFs[i]))
	}

	logger := builderLogger(ctx).WithValues("vmName", intent.Name)
	logger.V(4).Info("Built create VM spec",
		"guestID", guestID,
		"datastore", intent.DatastoreName,
		"numNetworkAdapters", len(intent.VIFs))
	specBuilt(logger, metrics.SpecKindCreateVM)

	return configSpec, nil
}

// BuildDummyVMSpec returns the ConfigSpec of a minimal VM with a single
// small disk on an LSI Logic controller.
func BuildDummyVMSpec(
	ctx context.Context,
	name, datastoreName string) vimtypes.VirtualMachineConfigSpec {

	configSpec := newVMConfigSpec(
		name,
		pkgcfg.DefaultGuestID,
		datastoreName,
		dummyVMNumCPUs,
		dummyVMMemoryMB)

	configSpec.DeviceChange = []vimtypes.BaseVirtualDeviceConfigSpec{
		BuildControllerSpec(
			ctx,
			devices.ControllerKindForAdapterType(dummyVMAdapterType),
			devices.ControllerKey,
			0),
		newDiskAttachDeviceSpec(
			devices.NewDisk(
				devices.DiskKey,
				devices.ControllerKey,
				0,
				dummyVMDiskSizeKB,
				devices.NewFlatBacking("", devices.DiskTypePreallocated)),
			true),
	}

	logger := builderLogger(ctx).WithValues("vmName", name)
	logger.V(4).Info("Built dummy VM spec", "datastore", datastoreName)
	specBuilt(logger, metrics.SpecKindDummyVM)

	return configSpec
}

// BuildGuestIdentityChangeSpec returns a ConfigSpec that sets the guest's
// machine identity. The value is not validated.
func BuildGuestIdentityChangeSpec(
	ctx context.Context,
	machineID string) vimtypes.VirtualMachineConfigSpec {

	logger := builderLogger(ctx)
	logger.V(4).Info("Built guest identity change spec",
		"machineID", pkglog.SensitiveValue(
			pkgcfg.FromContextOrDefault(ctx).LogSensitiveData, machineID))
	specBuilt(logger, metrics.SpecKindGuestIdentity)

	return vimtypes.VirtualMachineConfigSpec{
		ExtraConfig: []vimtypes.BaseOptionValue{
			&vimtypes.OptionValue{
				Key:   MachineIDKey,
				Value: machineID,
			},
		},
	}
}

func newVMConfigSpec(
	name, guestID, datastoreName string,
	numCPUs int32,
	memoryMB int64) vimtypes.VirtualMachineConfigSpec {

	return vimtypes.VirtualMachineConfigSpec{
		Name:    name,
		GuestId: guestID,
		Files: &vimtypes.VirtualMachineFileInfo{
			VmPathName: datastore.Root(datastoreName),
		},
		Tools:    newToolsConfigInfo(),
		NumCPUs:  numCPUs,
		MemoryMB: memoryMB,
	}
}

// newToolsConfigInfo returns the tools policy applied to every VM. Tools
// scripts run after power on and resume, and before the guest is put in
// standby, shut down or rebooted.
func newToolsConfigInfo() *vimtypes.ToolsConfigInfo {
	return &vimtypes.ToolsConfigInfo{
		AfterPowerOn:        ptr.To(true),
		AfterResume:         ptr.To(true),
		BeforeGuestStandby:  ptr.To(true),
		BeforeGuestShutdown: ptr.To(true),
		BeforeGuestReboot:   ptr.To(true),
	}
}
