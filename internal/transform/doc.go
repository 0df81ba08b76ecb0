// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package transform provides the six built-in stage transforms —
// logger, uppercaser, rotator, flipper, expander, typewriter — and
// self-registers each under its name in the stage package's Registry
// via init(). Importing this package for its side effect (a blank
// import from cmd/strmpipe) is what makes the names resolvable.
//
// logger and typewriter write to the shared console sink; the rest
// are pure string transforms operating on runes rather than bytes, so
// multi-byte UTF-8 input is handled correctly by rotator, flipper, and
// expander.
package transform
