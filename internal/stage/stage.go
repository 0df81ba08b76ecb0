// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package stage

import (
	"sync"

	"code.hybscloud.com/atomix"
	"github.com/rs/zerolog"

	"code.hybscloud.com/strmpipe/internal/queue"
	"code.hybscloud.com/strmpipe/internal/signal"
)

// Sentinel is the in-band token that drains the pipeline. It is
// forwarded verbatim by every stage and is always the last item a
// stage's worker processes.
const Sentinel = "<END>"

// Transform is the ownership-first transform contract: keep == false
// drops s, keep == true forwards out (which may equal s — Go string
// values carry no aliasing hazard, so there is no pointer-equality
// special case to make).
type Transform func(s string) (out string, keep bool)

// ForwardHook hands a processed string to the next stage's inbox.
type ForwardHook func(s string) error

// StageModule is the six-operation interface every loaded transform
// satisfies: Init, GetName, Attach, PlaceWork, WaitFinished, Fini.
type StageModule interface {
	Init(queueSize int) error
	GetName() string
	Attach(hook ForwardHook)
	PlaceWork(s string) error
	WaitFinished() error
	Fini() error
}

// Stage is the concrete StageModule implementation shared by every
// built-in transform: one inbox, one worker goroutine, one transform
// function, one optional forward hook.
type Stage struct {
	name      string
	transform Transform
	logger    *zerolog.Logger

	initialized atomix.Bool
	inbox       *queue.BoundedQueue
	ready       *signal.Signal
	wg          sync.WaitGroup

	forwardMu sync.RWMutex
	forward   ForwardHook
	attached  bool
}

// New constructs a Stage around the given transform. logger may be
// nil, in which case a disabled logger is used.
func New(name string, transform Transform, logger *zerolog.Logger) *Stage {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Stage{
		name:      name,
		transform: transform,
		logger:    logger,
		ready:     signal.New(),
	}
}

// SetLogger overrides the stage's logger. It is an optional capability
// beyond the six-method StageModule contract — callers that hold a
// *Stage (or anything satisfying this interface) may use it, but
// nothing in the core contract requires it. Safe only before Init
// starts the worker goroutine.
func (s *Stage) SetLogger(logger *zerolog.Logger) {
	if logger == nil {
		return
	}
	s.logger = logger
}

// GetName returns the stage's display name.
func (s *Stage) GetName() string {
	return s.name
}

// Init allocates the stage's inbox with the given capacity and starts
// its worker, blocking until the worker's startup handshake
// completes.
func (s *Stage) Init(queueSize int) error {
	inbox, err := queue.New(queueSize)
	if err != nil {
		return err
	}
	s.inbox = inbox

	s.wg.Add(1)
	go s.run()
	s.ready.Wait()

	s.initialized.StoreRelease(true)
	s.logger.Debug().Str("stage", s.name).Int("queue_size", queueSize).Msg("stage initialized")
	return nil
}

// Attach sets the downstream forward hook. It may be called at most
// once, before any PlaceWork call — a second call is a construction
// bug, so it panics rather than returning an error.
func (s *Stage) Attach(hook ForwardHook) {
	s.forwardMu.Lock()
	defer s.forwardMu.Unlock()
	if s.attached {
		panic(ErrAlreadyAttached)
	}
	s.forward = hook
	s.attached = true
}

// PlaceWork enqueues s on the stage's inbox, blocking while the inbox
// is full.
func (s *Stage) PlaceWork(str string) error {
	if !s.initialized.LoadAcquire() {
		return ErrNotInitialized
	}
	return s.inbox.Put(str)
}

// WaitFinished blocks until the worker has observed Sentinel.
func (s *Stage) WaitFinished() error {
	if !s.initialized.LoadAcquire() {
		return ErrNotInitialized
	}
	s.inbox.WaitFinished()
	return nil
}

// Fini releases the inbox and joins the worker. Destroy must run
// before wg.Wait: it is what unblocks a worker parked in Get when
// Fini is called without the worker ever having observed Sentinel
// (construction rollback, a load/init failure further down the
// pipeline, or any other early teardown). Safe to call more than once
// or without a prior Init.
func (s *Stage) Fini() error {
	if !s.initialized.LoadAcquire() {
		return nil
	}
	s.inbox.Destroy()
	s.wg.Wait()
	s.initialized.StoreRelease(false)
	return nil
}

func (s *Stage) callForward(str string) error {
	s.forwardMu.RLock()
	hook := s.forward
	s.forwardMu.RUnlock()
	if hook == nil {
		return nil
	}
	return hook(str)
}

// run is the worker's body: the end-of-stream protocol built around
// Sentinel. It signals ready once, immediately, so Init's handshake
// never waits on anything but goroutine scheduling.
func (s *Stage) run() {
	defer s.wg.Done()
	s.ready.Set()

	for {
		str, err := s.inbox.Get()
		if err != nil {
			// Inbox destroyed out from under us: not a normal
			// sentinel-driven exit, but there is nothing left to
			// consume from.
			return
		}

		if str == Sentinel {
			if err := s.callForward(str); err != nil {
				s.logger.Error().Err(err).Str("stage", s.name).Msg("forward hook failed on sentinel")
			}
			s.inbox.SignalFinished()
			return
		}

		out, keep := s.transform(str)
		if !keep {
			s.logger.Warn().Str("stage", s.name).Msg("transform dropped item")
			continue
		}
		if err := s.callForward(out); err != nil {
			s.logger.Warn().Err(err).Str("stage", s.name).Msg("forward hook failed")
		}
	}
}
