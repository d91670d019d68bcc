// © Broadcom. All Rights Reserved.
// The term “Broadcom” refers to Broadcom Inc. and/or its subsidiaries.
// SPDX-License-Identifier: Apache-2.0

package datastore

import (
	"strings"

	"github.com/vmware/govmomi/object"

	pkgerr "github.com/vmware-tanzu/vm-devspec/pkg/errors"
)

// Path is a file location relative to a datastore, ex.
// "[datastore1] folder/disk.vmdk".
type Path struct {
	// Datastore is the name of the datastore, without brackets.
	Datastore string

	// Path is the file path relative to the root of the datastore. It may be
	// empty.
	Path string
}

// Encode returns the datastore path notation for the datastore name and path.
// Exactly one space separates the bracketed name from the path.
func Encode(datastoreName, path string) string {
	return "[" + datastoreName + "] " + path
}

// Root returns the path of the root directory of a datastore, ex.
// "[datastore1]".
func Root(datastoreName string) string {
	return "[" + datastoreName + "]"
}

// Decode parses a datastore path. Only the first '[' and the first ']' after
// it are significant, so the relative path may itself contain ']'. If there is
// no ']' the remainder is taken as the datastore name and the path is empty.
// Whitespace around the path is trimmed.
func Decode(raw string) (Path, error) {
	_, afterOpen, ok := strings.Cut(raw, "[")
	if !ok {
		return Path{}, pkgerr.MalformedPathError{Path: raw}
	}

	name, rest, ok := strings.Cut(afterOpen, "]")
	if !ok {
		return Path{Datastore: afterOpen}, nil
	}

	return Path{
		Datastore: name,
		Path:      strings.TrimSpace(rest),
	}, nil
}

// String returns the encoded form of p.
func (p Path) String() string {
	return Encode(p.Datastore, p.Path)
}

// ToObject returns p as a govmomi DatastorePath.
func (p Path) ToObject() object.DatastorePath {
	return object.DatastorePath{
		Datastore: p.Datastore,
		Path:      p.Path,
	}
}

// FromObject returns the Path for a govmomi DatastorePath.
func FromObject(p object.DatastorePath) Path {
	return Path{
		Datastore: p.Datastore,
		Path:      p.Path,
	}
}
