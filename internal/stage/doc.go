// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package stage implements the pipeline's unit of work: one worker
// goroutine, one inbox queue, one transform, and an optional forward
// hook to the next stage, driven by the sentinel-based end-of-stream
// protocol.
//
// A Stage is constructed uninitialized; Init allocates its inbox and
// starts its worker, blocking until the worker's startup handshake
// (the ready Signal) completes. Attach wires the forward hook exactly
// once, before any work is placed. PlaceWork feeds the inbox;
// WaitFinished blocks until the worker has observed Sentinel; Fini
// joins the worker and releases the inbox. Calling these out of order
// (PlaceWork before Init, Attach twice) is a programmer error, not an
// operational one, and is reported accordingly — ErrNotInitialized as
// a returned error, a duplicate Attach as a panic.
package stage
