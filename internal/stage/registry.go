// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stage

import (
	"fmt"
	"sync"
)

// Factory allocates a fresh, independently-owned StageModule. The
// transform package's built-ins call Register with one Factory per
// name from their init() functions; each invocation must return a
// stage with its own state, so that using the same transform name
// twice in one pipeline yields two stages that never share memory.
type Factory func() StageModule

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register adds a named factory to the global registry. It panics on
// a duplicate name: that is a programmer error caught at init() time,
// never a runtime condition a caller can recover from.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("stage: duplicate registration for %q", name))
	}
	registry[name] = factory
}

// Lookup returns the factory registered under name, if any.
func Lookup(name string) (Factory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	factory, ok := registry[name]
	return factory, ok
}

// Load resolves name via Lookup and invokes its factory, yielding a
// fresh StageModule instance.
func Load(name string) (StageModule, error) {
	if len(name) > maxNameLen {
		return nil, ErrNameTooLong
	}
	factory, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStage, name)
	}
	return factory(), nil
}
