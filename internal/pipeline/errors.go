// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipeline

import "errors"

// ErrNoStages is returned by New when given an empty stage name list.
var ErrNoStages = errors.New("pipeline: at least one stage is required")

// ErrQueueSizeOutOfRange is returned by New when queueSize falls
// outside [MinQueueSize, MaxQueueSize].
var ErrQueueSizeOutOfRange = errors.New("pipeline: queue size out of range")

// MinQueueSize and MaxQueueSize bound the queue_size CLI argument.
const (
	MinQueueSize = 1
	MaxQueueSize = 1_000_000
)

// MaxLineLength is the published maximum input line length, including
// the trailing newline, the input loop enforces.
const MaxLineLength = 1024
