// © Broadcom. All Rights Reserved.
// The term “Broadcom” refers to Broadcom Inc. and/or its subsidiaries.
// SPDX-License-Identifier: Apache-2.0

package devices_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	vimtypes "github.com/vmware/govmomi/vim25/types"

	"github.com/vmware-tanzu/vm-devspec/pkg/devices"
)

var _ = Describe("SelectDevicesByType", func() {
	Context("selecting a VirtualDisk", func() {
		It("will return only the selected device type", func() {
			devOut := devices.SelectDevicesByType[*vimtypes.VirtualDisk](
				[]vimtypes.BaseVirtualDevice{
					&vimtypes.VirtualLsiLogicController{},
					&vimtypes.VirtualDisk{},
					nil,
					&vimtypes.VirtualPCNet32{},
				},
			)
			Expect(devOut).To(BeAssignableToTypeOf([]*vimtypes.VirtualDisk{}))
			Expect(devOut).To(HaveLen(1))
			Expect(devOut[0]).To(BeEquivalentTo(&vimtypes.VirtualDisk{}))
		})
	})
})

var _ = Describe("SelectDevicesByDeviceAndBackingType", func() {
	It("will return only disks with a raw disk mapping backing", func() {
		rdm := &vimtypes.VirtualDisk{
			VirtualDevice: vimtypes.VirtualDevice{
				Backing: &vimtypes.VirtualDiskRawDiskMappingVer1BackingInfo{LunUuid: "ABC"},
			},
		}
		devOut := devices.SelectDevicesByDeviceAndBackingType[
			*vimtypes.VirtualDisk,
			*vimtypes.VirtualDiskRawDiskMappingVer1BackingInfo,
		](
			[]vimtypes.BaseVirtualDevice{
				&vimtypes.VirtualDisk{
					VirtualDevice: vimtypes.VirtualDevice{
						Backing: &vimtypes.VirtualDiskFlatVer2BackingInfo{},
					},
				},
				rdm,
				&vimtypes.VirtualDisk{},
			},
		)
		Expect(devOut).To(HaveLen(1))
		Expect(devOut[0]).To(BeIdenticalTo(rdm))
	})
})

var _ = Describe("SelectDiskControllers", func() {
	It("will return the recognized storage controllers", func() {
		ide := &vimtypes.VirtualIDEController{}
		sas := &vimtypes.VirtualLsiLogicSASController{}
		devOut := devices.SelectDiskControllers([]vimtypes.BaseVirtualDevice{
			ide,
			&vimtypes.ParaVirtualSCSIController{},
			&vimtypes.VirtualDisk{},
			sas,
		})
		Expect(devOut).To(HaveLen(2))
		Expect(devOut[0]).To(BeIdenticalTo(ide))
		Expect(devOut[1]).To(BeIdenticalTo(sas))
	})
})
