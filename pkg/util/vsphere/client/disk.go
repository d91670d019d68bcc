// © Broadcom. All Rights Reserved.
// The term “Broadcom” refers to Broadcom Inc. and/or its subsidiaries.
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"

	"github.com/vmware/govmomi/object"
	vimtypes "github.com/vmware/govmomi/vim25/types"

	"github.com/vmware-tanzu/vm-devspec/pkg/util/vsphere/datastore"
)

// CreateVirtualDisk creates a virtual disk at the datastore path.
func (c *Client) CreateVirtualDisk(
	ctx context.Context,
	path datastore.Path,
	spec vimtypes.BaseVirtualDiskSpec) error {

	m := object.NewVirtualDiskManager(c.vimClient)
	t, err := m.CreateVirtualDisk(ctx, path.String(), c.datacenter, spec)
	if err != nil {
		return fmt.Errorf("failed to create virtual disk %s: %w", path, err)
	}
	if err := t.Wait(ctx); err != nil {
		return fmt.Errorf("failed to create virtual disk %s: %w", path, err)
	}
	return nil
}

// CopyVirtualDisk copies a virtual disk. The destination disk is described by
// spec.
func (c *Client) CopyVirtualDisk(
	ctx context.Context,
	src, dst datastore.Path,
	spec *vimtypes.VirtualDiskSpec,
	force bool) error {

	m := object.NewVirtualDiskManager(c.vimClient)
	t, err := m.CopyVirtualDisk(ctx, src.String(), c.datacenter, dst.String(), c.datacenter, spec, force)
	if err != nil {
		return fmt.Errorf("failed to copy virtual disk %s to %s: %w", src, dst, err)
	}
	if err := t.Wait(ctx); err != nil {
		return fmt.Errorf("failed to copy virtual disk %s to %s: %w", src, dst, err)
	}
	return nil
}
