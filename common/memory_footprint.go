// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package common

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// MemoryFootprint describes the memory consumption of a component, including
// its subcomponents as named children.
type MemoryFootprint struct {
	value    uintptr
	children map[string]*MemoryFootprint
	note     string
}

// NewMemoryFootprint creates a footprint with the given amount of memory
// used by the component itself, excluding its children.
func NewMemoryFootprint(value uintptr) *MemoryFootprint {
	return &MemoryFootprint{value: value}
}

// AddChild attaches the footprint of a subcomponent under the given name.
func (mf *MemoryFootprint) AddChild(name string, child *MemoryFootprint) {
	if mf.children == nil {
		mf.children = make(map[string]*MemoryFootprint)
	}
	mf.children[name] = child
}

// SetNote attaches a human-readable annotation, e.g. an item count.
func (mf *MemoryFootprint) SetNote(note string) {
	mf.note = note
}

// Value provides the amount of memory used by the component itself.
func (mf *MemoryFootprint) Value() uintptr {
	return mf.value
}

// Total provides the amount of memory used by the component including all
// its children.
func (mf *MemoryFootprint) Total() uintptr {
	total := mf.value
	for _, child := range mf.children {
		total += child.Total()
	}
	return total
}

// String renders the footprint as an indented tree, children sorted by name
// for deterministic output.
func (mf *MemoryFootprint) String() string {
	var sb strings.Builder
	mf.toString(&sb, ".", 0)
	return sb.String()
}

func (mf *MemoryFootprint) toString(sb *strings.Builder, path string, indent int) {
	fmt.Fprintf(sb, "%s%s: %d bytes", strings.Repeat("  ", indent), path, mf.Total())
	if mf.note != "" {
		fmt.Fprintf(sb, " %s", mf.note)
	}
	sb.WriteString("\n")
	names := maps.Keys(mf.children)
	slices.Sort(names)
	for _, name := range names {
		mf.children[name].toString(sb, name, indent+1)
	}
}
