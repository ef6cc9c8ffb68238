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

// MemoryFootprintProvider is implemented by components able to report the
// size of the memory they occupy.
type MemoryFootprintProvider interface {
	GetMemoryFootprint() *MemoryFootprint
}

// FlushAndCloser is implemented by components owning flushable and closeable
// resources, such as store backends.
type FlushAndCloser interface {
	// Flush writes all committed content to disk.
	Flush() error

	// Close flushes the component and releases resources.
	Close() error
}
