// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package arena

import (
	"testing"

	"github.com/0xsoniclabs/scratch/common"
	"github.com/stretchr/testify/require"
)

type payload struct {
	next  Ref
	value uint64
}

func TestArena_NewRecordsAreZeroInitializedAndNeverNil(t *testing.T) {
	require := require.New(t)
	a := New[payload]()
	for i := 0; i < 3*defaultPageItems; i++ {
		ref := a.New()
		require.NotEqual(NilRef, ref, "allocation %d", i)
		record := a.Get(ref)
		require.Equal(payload{}, *record, "allocation %d", i)
	}
	require.Equal(3*defaultPageItems, a.Size())
}

func TestArena_RecordsStayValidAcrossGrowth(t *testing.T) {
	require := require.New(t)
	a := New[payload]()

	first := a.New()
	a.Get(first).value = 42

	// force several page allocations
	for i := 0; i < 4*defaultPageItems; i++ {
		a.Get(a.New()).value = uint64(i)
	}

	require.Equal(uint64(42), a.Get(first).value)
	require.Equal(NilRef, a.Get(first).next)
}

func TestArena_NewBulk_ReservesConsecutiveRecords(t *testing.T) {
	require := require.New(t)
	a := New[payload]()

	single := a.New()
	first := a.NewBulk(100)
	require.Equal(single+1, first)
	for i := 0; i < 100; i++ {
		record := a.Get(first + Ref(i))
		require.Equal(payload{}, *record)
		record.value = uint64(i)
	}
	for i := 0; i < 100; i++ {
		require.Equal(uint64(i), a.Get(first+Ref(i)).value)
	}
	require.Equal(101, a.Size())
}

func TestArena_NewBulk_SpansPageBoundaries(t *testing.T) {
	require := require.New(t)
	a := New[payload]()
	first := a.NewBulk(2*defaultPageItems + 3)
	last := first + Ref(2*defaultPageItems+2)
	a.Get(first).value = 1
	a.Get(last).value = 2
	require.Equal(uint64(1), a.Get(first).value)
	require.Equal(uint64(2), a.Get(last).value)
}

func TestArena_AllocatingUpToTheLimitSucceeds(t *testing.T) {
	require := require.New(t)
	a := NewWithLimit[payload](2)
	a.New()
	a.New()
	require.Equal(2, a.Size())
}

func TestArena_ExhaustionPanicCarriesAllocationFailure(t *testing.T) {
	require := require.New(t)
	a := NewWithLimit[payload](1)
	a.New()
	defer func() {
		r := recover()
		require.NotNil(r, "allocation beyond the limit must panic")
		err, ok := r.(error)
		require.True(ok, "panic value must be an error, got %v", r)
		require.ErrorIs(err, common.ErrAllocationFailure)
	}()
	a.New()
}

func TestArena_BulkExhaustionIsFatal(t *testing.T) {
	require := require.New(t)
	a := NewWithLimit[payload](10)
	defer func() {
		err, ok := recover().(error)
		require.True(ok)
		require.ErrorIs(err, common.ErrAllocationFailure)
	}()
	a.NewBulk(11)
}

func TestArena_ResolvingNilRefIsFatal(t *testing.T) {
	require := require.New(t)
	a := New[payload]()
	require.Panics(func() { a.Get(NilRef) })
}

func TestArena_ResolvingUnallocatedRefIsFatal(t *testing.T) {
	require := require.New(t)
	a := New[payload]()
	ref := a.New()
	require.Panics(func() { a.Get(ref + 1) })
}

func TestArena_GetMemoryFootprint_GrowsWithPages(t *testing.T) {
	require := require.New(t)
	a := New[payload]()
	before := a.GetMemoryFootprint().Total()
	for i := 0; i < 2*defaultPageItems; i++ {
		a.New()
	}
	after := a.GetMemoryFootprint().Total()
	require.Greater(after, before)
}
