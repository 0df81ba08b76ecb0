// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package signal provides a manual-reset ("sticky") condition latch.
//
// A Signal starts unset. Set marks it set and wakes every current and
// future waiter until Reset clears it again. Unlike a counting
// primitive (a semaphore, or sync.Cond used bare), a Signal does not
// need the producer to know how many waiters exist: Set is safe to
// call before any goroutine calls Wait, and every Wait call after that
// Set returns immediately until the next Reset.
//
// This is the primitive the rest of this module's blocking queue is
// built on: each blocking operation holds a predicate ("queue is not
// full", "queue is not empty"), and retries it in a loop that resets
// and waits on the relevant Signal between attempts. See package queue.
package signal

import (
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// spinLimit bounds the optimistic pre-check before a Signal parks a
// waiter on the condition variable. It trades a handful of cheap
// spin iterations for the chance to skip acquiring the mutex
// entirely when a signal arrives while nobody is yet parked.
const spinLimit = 32

// Signal is a manual-reset condition latch. The zero value is not
// usable; construct with New.
type Signal struct {
	mu       sync.Mutex
	cond     *sync.Cond
	signaled atomix.Bool
}

// New returns a Signal in the unset state.
func New() *Signal {
	s := &Signal{}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Set marks the signal set and wakes every waiter, present or future,
// that has not yet observed an intervening Reset. Idempotent: calling
// Set twice in a row is indistinguishable from calling it once.
func (s *Signal) Set() {
	s.mu.Lock()
	s.signaled.StoreRelease(true)
	s.cond.Broadcast()
	s.mu.Unlock()
}

// Reset marks the signal unset. It does not wake anyone — Reset is
// only ever meaningful to a goroutine about to re-check a predicate
// and Wait again.
func (s *Signal) Reset() {
	s.mu.Lock()
	s.signaled.StoreRelease(false)
	s.mu.Unlock()
}

// Wait blocks until the signal is set. If it is already set, Wait
// returns immediately. Wait never consumes the signal: multiple
// concurrent waiters released by one Set each observe the signal set
// and return.
func (s *Signal) Wait() {
	// Optimistic spin: common case is "already set", and spin.Wait's
	// pause is far cheaper than taking the mutex and parking on the
	// condition variable.
	sw := spin.Wait{}
	for i := 0; i < spinLimit; i++ {
		if s.signaled.LoadAcquire() {
			return
		}
		sw.Once()
	}

	s.mu.Lock()
	for !s.signaled.LoadAcquire() {
		s.cond.Wait()
	}
	s.mu.Unlock()
}

// IsSet reports whether the signal is currently set, without waiting.
// Used by callers that want a non-blocking peek (e.g. a worker loop
// deciding whether to keep draining before exiting).
func (s *Signal) IsSet() bool {
	return s.signaled.LoadAcquire()
}
