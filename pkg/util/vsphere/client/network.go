// © Broadcom. All Rights Reserved.
// The term “Broadcom” refers to Broadcom Inc. and/or its subsidiaries.
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"

	"github.com/vmware/govmomi/object"
	vimtypes "github.com/vmware/govmomi/vim25/types"
)

// AddPortGroup adds a port group to a standard virtual switch on the host.
func (c *Client) AddPortGroup(
	ctx context.Context,
	host *object.HostSystem,
	spec vimtypes.HostPortGroupSpec) error {

	ns, err := host.ConfigManager().NetworkSystem(ctx)
	if err != nil {
		return fmt.Errorf("failed to get network system of %s: %w", host.Reference(), err)
	}

	if err := ns.AddPortGroup(ctx, spec); err != nil {
		return fmt.Errorf("failed to add port group %q to %s: %w",
			spec.Name, spec.VswitchName, err)
	}

	return nil
}
