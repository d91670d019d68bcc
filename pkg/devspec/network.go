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
	pkglog "github.com/vmware-tanzu/vm-devspec/pkg/log"
	"github.com/vmware-tanzu/vm-devspec/pkg/metrics"
)

// BuildNetworkAdapterSpec returns the device change that adds a PCNet32
// network adapter for the VIF. The adapter is backed by a distributed port
// group when the VIF's network is one, otherwise by the named network.
//
// Every adapter gets the same placeholder key. Use UniquifyDeviceKeys when
// adding more than one adapter in a single ConfigSpec.
func BuildNetworkAdapterSpec(
	ctx context.Context,
	vif VIFInfo) *vimtypes.VirtualDeviceConfigSpec {

	var backing vimtypes.BaseVirtualDeviceBackingInfo
	if ref := vif.NetworkRef; ref.isDistributed() {
		backing = devices.NewDistributedPortBacking(ref.SwitchUUID, ref.PortgroupKey)
	} else {
		backing = devices.NewNetworkBacking(vif.NetworkName)
	}

	logger := builderLogger(ctx)
	logger.V(4).Info("Built network adapter spec",
		"network", vif.NetworkName,
		"distributed", vif.NetworkRef.isDistributed(),
		"macAddress", pkglog.SensitiveValue(
			pkgcfg.FromContextOrDefault(ctx).LogSensitiveData, vif.MACAddress))
	specBuilt(logger, metrics.SpecKindNetworkAdapter)

	return &vimtypes.VirtualDeviceConfigSpec{
		Operation: vimtypes.VirtualDeviceConfigSpecOperationAdd,
		Device: devices.NewPCNet32(
			devices.NetworkAdapterKey,
			vif.MACAddress,
			backing),
	}
}

// BuildPortGroupSpec returns the spec of a port group on a host's standard
// virtual switch. A vlanID of zero means the traffic is not tagged.
func BuildPortGroupSpec(
	ctx context.Context,
	vswitchName, portGroupName string,
	vlanID int32) vimtypes.HostPortGroupSpec {

	logger := builderLogger(ctx)
	logger.V(4).Info("Built port group spec",
		"vswitch", vswitchName, "portGroup", portGroupName, "vlanID", vlanID)
	specBuilt(logger, metrics.SpecKindPortGroup)

	return vimtypes.HostPortGroupSpec{
		Name:        portGroupName,
		VswitchName: vswitchName,
		VlanId:      vlanID,
		Policy: vimtypes.HostNetworkPolicy{
			NicTeaming: &vimtypes.HostNicTeamingPolicy{
				NotifySwitches: ptr.To(true),
			},
		},
	}
}
