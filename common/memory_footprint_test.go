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
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryFootprint_TotalIncludesChildren(t *testing.T) {
	require := require.New(t)
	parent := NewMemoryFootprint(100)
	parent.AddChild("a", NewMemoryFootprint(10))
	child := NewMemoryFootprint(20)
	child.AddChild("nested", NewMemoryFootprint(5))
	parent.AddChild("b", child)

	require.Equal(uintptr(100), parent.Value())
	require.Equal(uintptr(135), parent.Total())
}

func TestMemoryFootprint_StringListsChildrenSorted(t *testing.T) {
	require := require.New(t)
	mf := NewMemoryFootprint(1)
	mf.AddChild("zebra", NewMemoryFootprint(2))
	mf.AddChild("alpha", NewMemoryFootprint(3))
	mf.SetNote("(items: 7)")

	printout := mf.String()
	require.Contains(printout, "(items: 7)")
	require.Less(strings.Index(printout, "alpha"), strings.Index(printout, "zebra"))
}
