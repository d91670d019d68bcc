// © Broadcom. All Rights Reserved.
// The term “Broadcom” refers to Broadcom Inc. and/or its subsidiaries.
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"

	"github.com/vmware/govmomi/object"
	"github.com/vmware/govmomi/property"
	"github.com/vmware/govmomi/view"
	vimtypes "github.com/vmware/govmomi/vim25/types"

	pkglog "github.com/vmware-tanzu/vm-devspec/pkg/log"
)

// CreateVM creates a VM in the folder and resource pool and returns it once
// the create task completes.
func (c *Client) CreateVM(
	ctx context.Context,
	folder *object.Folder,
	pool *object.ResourcePool,
	configSpec vimtypes.VirtualMachineConfigSpec) (*object.VirtualMachine, error) {

	log := pkglog.FromContextOrDefault(ctx).WithName("CreateVM")

	t, err := folder.CreateVM(ctx, configSpec, pool, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create VM %q: %w", configSpec.Name, err)
	}

	info, err := t.WaitForResult(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create VM %q: %w", configSpec.Name, err)
	}

	vmRef, ok := info.Result.(vimtypes.ManagedObjectReference)
	if !ok {
		return nil, fmt.Errorf("create VM %q task result is %T", configSpec.Name, info.Result)
	}

	log.Info("Created VM", "name", configSpec.Name, "vm", vmRef.Value)

	return object.NewVirtualMachine(c.vimClient, vmRef), nil
}

// FindVMByName returns the VM with the given name, or nil if there is no
// such VM.
func (c *Client) FindVMByName(
	ctx context.Context,
	name string) (*object.VirtualMachine, error) {

	m := view.NewManager(c.vimClient)
	v, err := m.CreateContainerView(
		ctx,
		c.vimClient.ServiceContent.RootFolder,
		[]string{"VirtualMachine"},
		true)
	if err != nil {
		return nil, fmt.Errorf("failed to create container view: %w", err)
	}
	defer func() {
		_ = v.Destroy(ctx)
	}()

	refs, err := v.Find(ctx, []string{"VirtualMachine"}, property.Match{"name": name})
	if err != nil {
		return nil, fmt.Errorf("failed to find VM %q: %w", name, err)
	}
	if len(refs) == 0 {
		return nil, nil
	}

	return object.NewVirtualMachine(c.vimClient, refs[0]), nil
}
