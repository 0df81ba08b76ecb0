// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package queue

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates TryPut/TryGet cannot proceed immediately
// (queue full or empty, respectively). It is an alias of
// iox.ErrWouldBlock for ecosystem consistency with this module's
// other non-blocking operations; callers may test with
// errors.Is(err, queue.ErrWouldBlock) or the IsWouldBlock helper.
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates the operation would
// block. Delegates to iox.IsWouldBlock for wrapped-error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// ErrInvalidCapacity is returned by New when capacity is not positive.
var ErrInvalidCapacity = errors.New("queue: capacity must be > 0")

// ErrClosed is returned by Put/Get once Destroy has released the
// queue's resources.
var ErrClosed = errors.New("queue: operation on a destroyed queue")
