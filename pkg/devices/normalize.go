// © Broadcom. All Rights Reserved.
// The term “Broadcom” refers to Broadcom Inc. and/or its subsidiaries.
// SPDX-License-Identifier: Apache-2.0

package devices

import (
	"github.com/vmware/govmomi/object"
	vimtypes "github.com/vmware/govmomi/vim25/types"

	pkgerr "github.com/vmware-tanzu/vm-devspec/pkg/errors"
)

// Normalize returns the device list carried by a property value. The property
// collector reports config.hardware.device as an ArrayOfVirtualDevice, while
// govmomi helpers return plain slices or a VirtualDeviceList. A nil value is
// an empty list.
func Normalize(v any) ([]vimtypes.BaseVirtualDevice, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case []vimtypes.BaseVirtualDevice:
		return t, nil
	case object.VirtualDeviceList:
		return t, nil
	case vimtypes.ArrayOfVirtualDevice:
		return t.VirtualDevice, nil
	case *vimtypes.ArrayOfVirtualDevice:
		if t == nil {
			return nil, nil
		}
		return t.VirtualDevice, nil
	}
	return nil, pkgerr.UnknownDeviceVariantError{Device: v}
}
