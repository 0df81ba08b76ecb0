// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

// Package buildtags exposes build-time facts tests use to skip
// concurrency stress tests that the race detector's instrumentation
// would slow down too much (the queue's concurrent-producer test and
// the signal's broadcast test).
package buildtags

// Enabled is true when the race detector is active.
const Enabled = true
