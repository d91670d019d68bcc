// © Broadcom. All Rights Reserved.
// The term “Broadcom” refers to Broadcom Inc. and/or its subsidiaries.
// SPDX-License-Identifier: Apache-2.0

package devices

import (
	vimtypes "github.com/vmware/govmomi/vim25/types"
	"k8s.io/utils/ptr"
)

// NewNetworkBacking returns a backing that connects an ethernet card to the
// named standard network.
func NewNetworkBacking(networkName string) *vimtypes.VirtualEthernetCardNetworkBackingInfo {
	return &vimtypes.VirtualEthernetCardNetworkBackingInfo{
		VirtualDeviceDeviceBackingInfo: vimtypes.VirtualDeviceDeviceBackingInfo{
			DeviceName: networkName,
		},
	}
}

// NewDistributedPortBacking returns a backing that connects an ethernet card
// to a distributed virtual portgroup.
func NewDistributedPortBacking(
	switchUUID, portgroupKey string) *vimtypes.VirtualEthernetCardDistributedVirtualPortBackingInfo {

	return &vimtypes.VirtualEthernetCardDistributedVirtualPortBackingInfo{
		Port: vimtypes.DistributedVirtualSwitchPortConnection{
			SwitchUuid:   switchUUID,
			PortgroupKey: portgroupKey,
		},
	}
}

// NewPCNet32 returns a connected PCNet32 ethernet card with a manually
// assigned MAC address.
func NewPCNet32(
	key int32,
	macAddress string,
	backing vimtypes.BaseVirtualDeviceBackingInfo) *vimtypes.VirtualPCNet32 {

	return &vimtypes.VirtualPCNet32{
		VirtualEthernetCard: vimtypes.VirtualEthernetCard{
			VirtualDevice: vimtypes.VirtualDevice{
				Key:     key,
				Backing: backing,
				Connectable: &vimtypes.VirtualDeviceConnectInfo{
					StartConnected:    true,
					AllowGuestControl: true,
					Connected:         true,
				},
			},
			AddressType:      string(vimtypes.VirtualEthernetCardMacTypeManual),
			MacAddress:       macAddress,
			WakeOnLanEnabled: ptr.To(true),
		},
	}
}

// IsEthernetCard returns true if dev is any kind of ethernet card.
func IsEthernetCard(dev vimtypes.BaseVirtualDevice) bool {
	_, ok := dev.(vimtypes.BaseVirtualEthernetCard)
	return ok
}
