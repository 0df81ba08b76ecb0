// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stage

import "errors"

// ErrNotInitialized is returned by operations that require Init to
// have already succeeded.
var ErrNotInitialized = errors.New("stage: not initialized")

// ErrAlreadyAttached is the panic value Attach raises when called a
// second time: at most one forward hook may be set, once, before
// input flows — a second call is a construction bug, not an
// operational condition a caller can recover from.
var ErrAlreadyAttached = errors.New("stage: forward hook already attached")

// ErrNameTooLong guards against pathological stage names ending up in
// log lines and error messages.
var ErrNameTooLong = errors.New("stage: name exceeds maximum length")

// ErrUnknownStage is returned by Registry.Load for a name with no
// registered factory.
var ErrUnknownStage = errors.New("stage: unknown stage name")

// maxNameLen bounds stage names; well below any reasonable transform
// identifier, generous enough never to reject a real one.
const maxNameLen = 256
