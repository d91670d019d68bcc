// © Broadcom. All Rights Reserved.
// The term “Broadcom” refers to Broadcom Inc. and/or its subsidiaries.
// SPDX-License-Identifier: Apache-2.0

package devspec_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	vimtypes "github.com/vmware/govmomi/vim25/types"
	"k8s.io/utils/ptr"

	pkgcfg "github.com/vmware-tanzu/vm-devspec/pkg/config"
	"github.com/vmware-tanzu/vm-devspec/pkg/devices"
	"github.com/vmware-tanzu/vm-devspec/pkg/devspec"
	pkgerr "github.com/vmware-tanzu/vm-devspec/pkg/errors"
	"github.com/vmware-tanzu/vm-devspec/pkg/metrics"
)

var _ = Describe("BuildCreateVMSpec", func() {

	var (
		ctx    context.Context
		intent devspec.VMIntent
	)

	BeforeEach(func() {
		ctx = newTestContext(pkgcfg.Default())
		intent = devspec.VMIntent{
			Name:          "my-vm",
			NumCPUs:       2,
			MemoryMB:      2048,
			DatastoreName: "datastore1",
		}
	})

	It("returns the VM ConfigSpec", func() {
		configSpec, err := devspec.BuildCreateVMSpec(ctx, intent)
		Expect(err).ToNot(HaveOccurred())

		Expect(configSpec.Name).To(Equal("my-vm"))
		Expect(configSpec.GuestId).To(Equal("otherGuest"))
		Expect(configSpec.NumCPUs).To(Equal(int32(2)))
		Expect(configSpec.MemoryMB).To(Equal(int64(2048)))
		Expect(configSpec.Files).To(Equal(&vimtypes.VirtualMachineFileInfo{
			VmPathName: "[datastore1]",
		}))
		Expect(configSpec.Tools).To(Equal(&vimtypes.ToolsConfigInfo{
			AfterPowerOn:        ptr.To(true),
			AfterResume:         ptr.To(true),
			BeforeGuestStandby:  ptr.To(true),
			BeforeGuestShutdown: ptr.To(true),
			BeforeGuestReboot:   ptr.To(true),
		}))
		Expect(configSpec.InstanceUuid).To(BeEmpty())
		Expect(configSpec.DeviceChange).To(BeEmpty())
	})

	It("works with a context that has no Config or logger", func() {
		configSpec, err := devspec.BuildCreateVMSpec(context.Background(), intent)
		Expect(err).ToNot(HaveOccurred())
		Expect(configSpec.GuestId).To(Equal(pkgcfg.DefaultGuestID))
	})

	When("the intent specifies a guest ID", func() {
		BeforeEach(func() {
			intent.GuestID = "ubuntu64Guest"
		})
		It("uses it", func() {
			configSpec, err := devspec.BuildCreateVMSpec(ctx, intent)
			Expect(err).ToNot(HaveOccurred())
			Expect(configSpec.GuestId).To(Equal("ubuntu64Guest"))
		})
	})

	When("the Config has a default guest ID", func() {
		BeforeEach(func() {
			pkgcfg.UpdateContext(ctx, func(config *pkgcfg.Config) {
				config.DefaultGuestID = "otherLinux64Guest"
			})
		})
		It("uses it", func() {
			configSpec, err := devspec.BuildCreateVMSpec(ctx, intent)
			Expect(err).ToNot(HaveOccurred())
			Expect(configSpec.GuestId).To(Equal("otherLinux64Guest"))
		})
	})

	When("the intent has an instance UUID", func() {
		BeforeEach(func() {
			intent.InstanceUUID = "1c2cd7e4-9f32-4c2f-8e3b-5b5a8d7a1e6f"
		})
		It("sets it", func() {
			configSpec, err := devspec.BuildCreateVMSpec(ctx, intent)
			Expect(err).ToNot(HaveOccurred())
			Expect(configSpec.InstanceUuid).To(Equal(intent.InstanceUUID))
		})
	})

	When("the intent has VIFs", func() {
		BeforeEach(func() {
			intent.VIFs = []devspec.VIFInfo{
				{
					NetworkName: "VM Network",
					MACAddress:  "00:50:56:00:00:01",
				},
				{
					NetworkName: "dvpg-1",
					MACAddress:  "00:50:56:00:00:02",
					NetworkRef: &devspec.NetworkRef{
						Type:         devspec.DistributedVirtualPortgroupType,
						SwitchUUID:   "50 2e 7a",
						PortgroupKey: "dvportgroup-11",
					},
				},
			}
		})

		It("adds a network adapter for each VIF in order", func() {
			configSpec, err := devspec.BuildCreateVMSpec(ctx, intent)
			Expect(err).ToNot(HaveOccurred())
			Expect(configSpec.DeviceChange).To(HaveLen(2))

			nic0 := configSpec.DeviceChange[0].GetVirtualDeviceConfigSpec().Device.(*vimtypes.VirtualPCNet32)
			Expect(nic0.MacAddress).To(Equal("00:50:56:00:00:01"))
			Expect(nic0.Backing).To(BeAssignableToTypeOf(&vimtypes.VirtualEthernetCardNetworkBackingInfo{}))

			nic1 := configSpec.DeviceChange[1].GetVirtualDeviceConfigSpec().Device.(*vimtypes.VirtualPCNet32)
			Expect(nic1.MacAddress).To(Equal("00:50:56:00:00:02"))
			Expect(nic1.Backing).To(BeAssignableToTypeOf(&vimtypes.VirtualEthernetCardDistributedVirtualPortBackingInfo{}))
		})

		It("returns structurally equal specs for the same intent", func() {
			configSpec1, err := devspec.BuildCreateVMSpec(ctx, intent)
			Expect(err).ToNot(HaveOccurred())
			configSpec2, err := devspec.BuildCreateVMSpec(ctx, intent)
			Expect(err).ToNot(HaveOccurred())
			Expect(cmp.Diff(configSpec1, configSpec2)).To(BeEmpty())
			Expect(configSpec1.DeviceChange[0]).ToNot(BeIdenticalTo(configSpec2.DeviceChange[0]))
		})
	})

	It("increments the create_vm metric", func() {
		counter := metrics.NewDeviceSpecMetrics().SpecsBuilt(metrics.SpecKindCreateVM)
		before := testutil.ToFloat64(counter)
		_, err := devspec.BuildCreateVMSpec(ctx, intent)
		Expect(err).ToNot(HaveOccurred())
		Expect(testutil.ToFloat64(counter)).To(Equal(before + 1))
	})

	DescribeTable("invalid intents",
		func(mutateFn func(*devspec.VMIntent), field string) {
			mutateFn(&intent)
			_, err := devspec.BuildCreateVMSpec(ctx, intent)
			Expect(err).To(HaveOccurred())
			Expect(pkgerr.IsInvalidIntentError(err)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring(field))
		},
		Entry("zero CPUs", func(i *devspec.VMIntent) { i.NumCPUs = 0 }, "numCPUs"),
		Entry("negative CPUs", func(i *devspec.VMIntent) { i.NumCPUs = -1 }, "numCPUs"),
		Entry("zero memory", func(i *devspec.VMIntent) { i.MemoryMB = 0 }, "memoryMB"),
		Entry("negative memory", func(i *devspec.VMIntent) { i.MemoryMB = -512 }, "memoryMB"),
		Entry("empty name", func(i *devspec.VMIntent) { i.Name = "" }, "name"),
		Entry("empty datastore", func(i *devspec.VMIntent) { i.DatastoreName = "" }, "datastoreName"),
		Entry("invalid instance UUID", func(i *devspec.VMIntent) { i.InstanceUUID = "not-a-uuid" }, "instanceUUID"),
		Entry("distributed port group without a switch", func(i *devspec.VMIntent) {
			i.VIFs = []devspec.VIFInfo{
				{
					NetworkRef: &devspec.NetworkRef{
						Type:         devspec.DistributedVirtualPortgroupType,
						PortgroupKey: "dvportgroup-11",
					},
				},
			}
		}, "vifs[0].networkRef.switchUUID"),
	)

	It("reports every invalid field", func() {
		intent.NumCPUs = 0
		intent.MemoryMB = 0
		_, err := devspec.BuildCreateVMSpec(ctx, intent)
		Expect(err).To(HaveOccurred())

		var invalid pkgerr.InvalidIntentError
		Expect(err).To(BeAssignableToTypeOf(invalid))
		invalid = err.(pkgerr.InvalidIntentError)
		Expect(invalid.Errs).To(HaveLen(2))
	})
})

var _ = Describe("BuildDummyVMSpec", func() {
	It("returns a minimal VM with a controller and a disk", func() {
		ctx := newTestContext(pkgcfg.Default())
		configSpec := devspec.BuildDummyVMSpec(ctx, "dummy", "datastore1")

		Expect(configSpec.Name).To(Equal("dummy"))
		Expect(configSpec.GuestId).To(Equal("otherGuest"))
		Expect(configSpec.NumCPUs).To(Equal(int32(1)))
		Expect(configSpec.MemoryMB).To(Equal(int64(4)))
		Expect(configSpec.Files.VmPathName).To(Equal("[datastore1]"))
		Expect(configSpec.Tools).ToNot(BeNil())
		Expect(configSpec.DeviceChange).To(HaveLen(2))

		ctrlSpec := configSpec.DeviceChange[0].GetVirtualDeviceConfigSpec()
		Expect(ctrlSpec.Operation).To(Equal(vimtypes.VirtualDeviceConfigSpecOperationAdd))
		ctrl, ok := ctrlSpec.Device.(*vimtypes.VirtualLsiLogicController)
		Expect(ok).To(BeTrue())
		Expect(ctrl.Key).To(Equal(devices.ControllerKey))

		diskSpec := configSpec.DeviceChange[1].GetVirtualDeviceConfigSpec()
		Expect(diskSpec.Operation).To(Equal(vimtypes.VirtualDeviceConfigSpecOperationAdd))
		Expect(diskSpec.FileOperation).To(Equal(vimtypes.VirtualDeviceConfigSpecFileOperationCreate))
		disk, ok := diskSpec.Device.(*vimtypes.VirtualDisk)
		Expect(ok).To(BeTrue())
		Expect(disk.ControllerKey).To(Equal(ctrl.Key))
		Expect(disk.CapacityInKB).To(Equal(int64(1024)))
		Expect(disk.Backing).To(Equal(devices.NewFlatBacking("", devices.DiskTypePreallocated)))
	})
})

var _ = Describe("BuildGuestIdentityChangeSpec", func() {
	It("sets the machine id extra config", func() {
		configSpec := devspec.BuildGuestIdentityChangeSpec(
			newTestContext(pkgcfg.Default()), "my-machine-id")
		Expect(configSpec).To(Equal(vimtypes.VirtualMachineConfigSpec{
			ExtraConfig: []vimtypes.BaseOptionValue{
				&vimtypes.OptionValue{
					Key:   "machine.id",
					Value: "my-machine-id",
				},
			},
		}))
	})

	It("does not validate the value", func() {
		configSpec := devspec.BuildGuestIdentityChangeSpec(context.Background(), "")
		Expect(configSpec.ExtraConfig).To(HaveLen(1))
		Expect(configSpec.ExtraConfig[0].GetOptionValue().Value).To(Equal(""))
	})
})
