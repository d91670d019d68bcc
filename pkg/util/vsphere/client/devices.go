// © Broadcom. All Rights Reserved.
// The term “Broadcom” refers to Broadcom Inc. and/or its subsidiaries.
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"

	"github.com/vmware/govmomi/object"
	"github.com/vmware/govmomi/property"
	vimtypes "github.com/vmware/govmomi/vim25/types"

	"github.com/vmware-tanzu/vm-devspec/pkg/devices"
	pkglog "github.com/vmware-tanzu/vm-devspec/pkg/log"
)

const hardwareDevicesProperty = "config.hardware.device"

// DeviceClient reads a VM's devices and reconfigures the VM.
type DeviceClient interface {
	FetchCurrentDevices(
		ctx context.Context,
		vmRef vimtypes.ManagedObjectReference) ([]vimtypes.BaseVirtualDevice, error)

	SubmitConfigurationRequest(
		ctx context.Context,
		vmRef vimtypes.ManagedObjectReference,
		configSpec vimtypes.VirtualMachineConfigSpec) error
}

// FetchCurrentDevices returns the VM's devices in the order vSphere reports
// them.
func (c *Client) FetchCurrentDevices(
	ctx context.Context,
	vmRef vimtypes.ManagedObjectReference) ([]vimtypes.BaseVirtualDevice, error) {

	var content []vimtypes.ObjectContent
	if err := property.DefaultCollector(c.vimClient).Retrieve(
		ctx,
		[]vimtypes.ManagedObjectReference{vmRef},
		[]string{hardwareDevicesProperty},
		&content); err != nil {

		return nil, fmt.Errorf("failed to retrieve devices of %s: %w", vmRef, err)
	}

	for i := range content {
		for _, prop := range content[i].PropSet {
			if prop.Name == hardwareDevicesProperty {
				return devices.Normalize(prop.Val)
			}
		}
	}

	return nil, nil
}

// SubmitConfigurationRequest reconfigures the VM and waits for the
// reconfigure task to complete.
func (c *Client) SubmitConfigurationRequest(
	ctx context.Context,
	vmRef vimtypes.ManagedObjectReference,
	configSpec vimtypes.VirtualMachineConfigSpec) error {

	log := pkglog.FromContextOrDefault(ctx).WithName("SubmitConfigurationRequest")

	vm := object.NewVirtualMachine(c.vimClient, vmRef)
	t, err := vm.Reconfigure(ctx, configSpec)
	if err != nil {
		return fmt.Errorf("failed to reconfigure %s: %w", vmRef, err)
	}

	log.V(4).Info("Waiting for reconfigure task",
		"vm", vmRef.Value, "task", t.Reference().Value,
		"numDeviceChanges", len(configSpec.DeviceChange))

	if err := t.Wait(ctx); err != nil {
		return fmt.Errorf("failed to reconfigure %s: %w", vmRef, err)
	}

	return nil
}
