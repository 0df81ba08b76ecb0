// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package queue

import (
	"errors"
	"sync"

	"code.hybscloud.com/atomix"

	"code.hybscloud.com/strmpipe/internal/signal"
)

// BoundedQueue is a fixed-capacity FIFO of owned strings. One consumer
// and any number of producers may use it concurrently; Put and Get
// transfer ownership of the string value between caller and queue (Go
// strings are immutable, so "ownership transfer" here just means the
// caller should not assume further mutation visibility — there is no
// aliasing hazard as there would be with a mutable buffer).
type BoundedQueue struct {
	mu       sync.Mutex
	buf      []string
	head     int
	tail     int
	count    int
	capacity int
	closed   bool

	notFull  *signal.Signal
	notEmpty *signal.Signal
	finished *signal.Signal

	// depth is an approximate, lock-free view of count for
	// observability (logging, metrics). It is never read for control
	// flow; the mutex-protected count is always authoritative.
	depth atomix.Int64
}

// New constructs a BoundedQueue with the given capacity. capacity must
// be positive.
func New(capacity int) (*BoundedQueue, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	q := &BoundedQueue{
		buf:      make([]string, capacity),
		capacity: capacity,
		notFull:  signal.New(),
		notEmpty: signal.New(),
		finished: signal.New(),
	}
	// A fresh queue is not full; prime notFull set so a producer that
	// arrives before any Get never waits on a signal nobody will ever
	// fire.
	q.notFull.Set()
	return q, nil
}

// TryPut enqueues s without blocking. Returns ErrWouldBlock if the
// queue is full, ErrClosed if Destroy has already run.
func (q *BoundedQueue) TryPut(s string) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrClosed
	}
	if q.count == q.capacity {
		q.mu.Unlock()
		return ErrWouldBlock
	}
	q.buf[q.tail] = s
	q.tail = (q.tail + 1) % q.capacity
	q.count++
	q.mu.Unlock()

	q.depth.AddAcqRel(1)
	q.notEmpty.Set()
	return nil
}

// TryGet dequeues the oldest item without blocking. Returns ("",
// ErrWouldBlock) if the queue is empty.
func (q *BoundedQueue) TryGet() (string, error) {
	q.mu.Lock()
	if q.count == 0 {
		closed := q.closed
		q.mu.Unlock()
		if closed {
			return "", ErrClosed
		}
		return "", ErrWouldBlock
	}
	s := q.buf[q.head]
	q.buf[q.head] = ""
	q.head = (q.head + 1) % q.capacity
	q.count--
	q.mu.Unlock()

	q.depth.AddAcqRel(-1)
	q.notFull.Set()
	return s, nil
}

// Put enqueues s, blocking while the queue is full. It implements the
// reset-then-wait retry loop documented in the package doc comment.
func (q *BoundedQueue) Put(s string) error {
	for {
		err := q.TryPut(s)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrWouldBlock) {
			return err
		}

		q.notFull.Reset()
		if q.isFull() {
			q.notFull.Wait()
		}
	}
}

// Get dequeues the oldest item, blocking while the queue is empty.
func (q *BoundedQueue) Get() (string, error) {
	for {
		s, err := q.TryGet()
		if err == nil {
			return s, nil
		}
		if !errors.Is(err, ErrWouldBlock) {
			return "", err
		}

		q.notEmpty.Reset()
		if q.isEmpty() {
			q.notEmpty.Wait()
		}
	}
}

func (q *BoundedQueue) isFull() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return !q.closed && q.count == q.capacity
}

func (q *BoundedQueue) isEmpty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return !q.closed && q.count == 0
}

// SignalFinished marks the queue's finished latch. Idempotent.
func (q *BoundedQueue) SignalFinished() {
	q.finished.Set()
}

// WaitFinished blocks until SignalFinished has been called.
func (q *BoundedQueue) WaitFinished() {
	q.finished.Wait()
}

// Len returns an approximate item count, suitable for logging and
// metrics only. See the depth field's comment for why this is never
// authoritative.
func (q *BoundedQueue) Len() int {
	return int(q.depth.LoadRelaxed())
}

// Cap returns the queue's fixed capacity.
func (q *BoundedQueue) Cap() int {
	return q.capacity
}

// Destroy releases the queue. Any strings still buffered are dropped
// (Go's garbage collector reclaims them; there is no manual free, but
// Destroy still drains and discards them explicitly so Len reports an
// empty queue rather than stale contents; Cap still reports the fixed
// capacity). Safe to call more
// than once. After Destroy, Put and Get return ErrClosed and TryPut/
// TryGet never block.
func (q *BoundedQueue) Destroy() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	for i := range q.buf {
		q.buf[i] = ""
	}
	q.head, q.tail, q.count = 0, 0, 0
	q.mu.Unlock()

	q.depth.StoreRelaxed(0)
	// Wake anyone still parked so they observe closed rather than
	// hanging forever.
	q.notFull.Set()
	q.notEmpty.Set()
}
