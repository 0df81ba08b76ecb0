// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipeline

import "github.com/rs/zerolog"

type options struct {
	logger                  *zerolog.Logger
	synthesizeSentinelOnEOF bool
}

// Option configures a Pipeline at construction time.
type Option func(*options)

// WithLogger sets the structured logger threaded down into every
// loaded stage that offers a SetLogger method. The default is a
// disabled logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSynthesizeSentinelOnEOF opts into treating end-of-input as
// equivalent to an explicit Sentinel line. The conservative default
// (false) leaves EOF without a sentinel as a bare input-loop exit,
// leaving downstream stages parked on their inbox until something
// else stops the process. A host that
// wants every stdin close to drain the pipeline cleanly can opt in.
func WithSynthesizeSentinelOnEOF(enabled bool) Option {
	return func(o *options) {
		o.synthesizeSentinelOnEOF = enabled
	}
}
