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

import "errors"

var (
	// ErrIndexOutOfBounds is reported by positional operations addressing an
	// index at or beyond the logical size of a container.
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrEmptyContainer is reported by operations requiring at least one
	// element, such as popping the tail of an empty sequence.
	ErrEmptyContainer = errors.New("container is empty")

	// ErrKeyNotFound is reported by associative lookups missing their key.
	// Absence on a plain scan is a normal outcome; this error is only raised
	// by operations whose contract requires the key to be present.
	ErrKeyNotFound = errors.New("key not found")

	// ErrAllocationFailure indicates that an arena could not grow. It is
	// fatal; it is delivered through a panic rather than a return value, as
	// running out of memory within a single bounded execution is not a
	// condition calling code is expected to handle.
	ErrAllocationFailure = errors.New("arena allocation failure")
)
