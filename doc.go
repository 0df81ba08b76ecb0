// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package strmpipe is the module root for a modular string-processing
// pipeline: a chain of independently loaded transformation stages,
// each running on its own worker goroutine, connected by bounded
// hand-off queues, driven by a line-oriented input source, and
// terminated by the in-band sentinel "<END>".
//
// The real logic lives under internal/:
//
//   - internal/signal    — manual-reset condition latch
//   - internal/queue     — bounded blocking FIFO of strings
//   - internal/stage     — one worker + inbox + transform + forward hook
//   - internal/pipeline  — wires stages together, drives them from input
//   - internal/transform — the six built-in stage transforms
//   - internal/console   — the shared buffered stdout sink
//
// cmd/strmpipe is the command-line entry point.
package strmpipe
