// © Broadcom. All Rights Reserved.
// The term “Broadcom” refers to Broadcom Inc. and/or its subsidiaries.
// SPDX-License-Identifier: Apache-2.0

package devspec_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	vimtypes "github.com/vmware/govmomi/vim25/types"
	"k8s.io/utils/ptr"

	pkgcfg "github.com/vmware-tanzu/vm-devspec/pkg/config"
	"github.com/vmware-tanzu/vm-devspec/pkg/devices"
	"github.com/vmware-tanzu/vm-devspec/pkg/devspec"
)

var _ = Describe("BuildNetworkAdapterSpec", func() {

	DescribeTable("backing",
		func(vif devspec.VIFInfo, expected vimtypes.BaseVirtualDeviceBackingInfo) {
			spec := devspec.BuildNetworkAdapterSpec(newTestContext(pkgcfg.Default()), vif)
			Expect(spec.Operation).To(Equal(vimtypes.VirtualDeviceConfigSpecOperationAdd))
			Expect(spec.FileOperation).To(BeEmpty())

			nic, ok := spec.Device.(*vimtypes.VirtualPCNet32)
			Expect(ok).To(BeTrue())
			Expect(nic.Key).To(Equal(devices.NetworkAdapterKey))
			Expect(nic.AddressType).To(Equal(string(vimtypes.VirtualEthernetCardMacTypeManual)))
			Expect(nic.MacAddress).To(Equal(vif.MACAddress))
			Expect(nic.WakeOnLanEnabled).To(Equal(ptr.To(true)))
			Expect(nic.Connectable).To(Equal(&vimtypes.VirtualDeviceConnectInfo{
				StartConnected:    true,
				AllowGuestControl: true,
				Connected:         true,
			}))
			Expect(nic.Backing).To(Equal(expected))
		},
		Entry("named network",
			devspec.VIFInfo{
				NetworkName: "VM Network",
				MACAddress:  "00:50:56:00:00:01",
			},
			&vimtypes.VirtualEthernetCardNetworkBackingInfo{
				VirtualDeviceDeviceBackingInfo: vimtypes.VirtualDeviceDeviceBackingInfo{
					DeviceName: "VM Network",
				},
			}),
		Entry("standard network ref",
			devspec.VIFInfo{
				NetworkName: "VM Network",
				MACAddress:  "00:50:56:00:00:02",
				NetworkRef:  &devspec.NetworkRef{Type: "Network"},
			},
			&vimtypes.VirtualEthernetCardNetworkBackingInfo{
				VirtualDeviceDeviceBackingInfo: vimtypes.VirtualDeviceDeviceBackingInfo{
					DeviceName: "VM Network",
				},
			}),
		Entry("distributed port group",
			devspec.VIFInfo{
				NetworkName: "dvpg-1",
				MACAddress:  "00:50:56:00:00:03",
				NetworkRef: &devspec.NetworkRef{
					Type:         devspec.DistributedVirtualPortgroupType,
					SwitchUUID:   "50 2e 7a",
					PortgroupKey: "dvportgroup-11",
				},
			},
			&vimtypes.VirtualEthernetCardDistributedVirtualPortBackingInfo{
				Port: vimtypes.DistributedVirtualSwitchPortConnection{
					SwitchUuid:   "50 2e 7a",
					PortgroupKey: "dvportgroup-11",
				},
			}),
	)

	When("sensitive data may be logged", func() {
		It("still returns the same spec", func() {
			vif := devspec.VIFInfo{NetworkName: "VM Network", MACAddress: "00:50:56:00:00:01"}
			config := pkgcfg.Default()
			config.LogSensitiveData = true

			spec1 := devspec.BuildNetworkAdapterSpec(newTestContext(config), vif)
			spec2 := devspec.BuildNetworkAdapterSpec(newTestContext(pkgcfg.Default()), vif)
			Expect(spec1).To(Equal(spec2))
		})
	})
})

var _ = Describe("BuildPortGroupSpec", func() {
	DescribeTable("port group",
		func(vlanID int32) {
			spec := devspec.BuildPortGroupSpec(
				newTestContext(pkgcfg.Default()), "vSwitch0", "pg-1", vlanID)
			Expect(spec).To(Equal(vimtypes.HostPortGroupSpec{
				Name:        "pg-1",
				VswitchName: "vSwitch0",
				VlanId:      vlanID,
				Policy: vimtypes.HostNetworkPolicy{
					NicTeaming: &vimtypes.HostNicTeamingPolicy{
						NotifySwitches: ptr.To(true),
					},
				},
			}))
		},
		Entry("untagged", int32(0)),
		Entry("tagged", int32(100)),
	)
})
