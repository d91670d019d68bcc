// © Broadcom. All Rights Reserved.
// The term “Broadcom” refers to Broadcom Inc. and/or its subsidiaries.
// SPDX-License-Identifier: Apache-2.0

package metrics

const (
	// If this changes, the metrics collection configs (e.g. telegraf) will need to be updated as well.
	metricsNamespace = "vmdevspec"

	// Builder related metrics labels.
	specKindLabel = "kind"

	// Inspector related metrics labels.
	reasonLabel = "reason"
)

// SpecKind identifies the kind of spec produced by a builder.
type SpecKind string

const (
	SpecKindCreateVM             SpecKind = "create_vm"
	SpecKindDummyVM              SpecKind = "dummy_vm"
	SpecKindController           SpecKind = "controller"
	SpecKindNetworkAdapter       SpecKind = "network_adapter"
	SpecKindDiskAttach           SpecKind = "disk_attach"
	SpecKindDiskDetach           SpecKind = "disk_detach"
	SpecKindGuestIdentity        SpecKind = "guest_identity"
	SpecKindPortGroup            SpecKind = "port_group"
	SpecKindVirtualDiskCopy      SpecKind = "virtual_disk_copy"
	SpecKindVirtualDiskCreate    SpecKind = "virtual_disk_create"
	SpecKindRawDiskMappingCreate SpecKind = "rdm_create"
)

// SkipReason describes why the inspector skipped a device.
type SkipReason string

const (
	SkipReasonNilDevice      SkipReason = "nil_device"
	SkipReasonUnknownBacking SkipReason = "unknown_backing"
)
