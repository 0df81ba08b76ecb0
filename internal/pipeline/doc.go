// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pipeline wires a chain of stage.StageModule instances
// together, drives them from standard input, and tears them down in
// the order the sentinel traverses them.
//
// Construction resolves each stage name through the stage package's
// Registry, initializes every stage in order (rolling back already-
// initialized stages on any failure), and attaches each stage's
// forward hook to the next stage's PlaceWork. The last stage gets no
// forward hook: whatever it produces is either consumed by the
// transform's own side effect (logger, typewriter) or simply dropped.
//
// Run reads newline-terminated lines from an io.Reader, feeds each
// into the first stage, and ends its loop the moment the sentinel
// line is seen (forwarding it like any other line first). Shutdown
// then waits for every stage to observe the sentinel, in pipeline
// order, before releasing any of them — this ordering guarantees a
// stage is never torn down while a later stage might still need to
// receive something from it.
package pipeline
