// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package queue_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"code.hybscloud.com/strmpipe/internal/buildtags"
	"code.hybscloud.com/strmpipe/internal/queue"
)

func TestNewRejectsNonPositiveCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		if _, err := queue.New(capacity); !errors.Is(err, queue.ErrInvalidCapacity) {
			t.Fatalf("New(%d): got %v, want ErrInvalidCapacity", capacity, err)
		}
	}
}

func TestTryPutFullReturnsWouldBlock(t *testing.T) {
	q, err := queue.New(1)
	if err != nil {
		t.Fatal(err)
	}
	if err := q.TryPut("a"); err != nil {
		t.Fatalf("first TryPut: %v", err)
	}
	if err := q.TryPut("b"); !errors.Is(err, queue.ErrWouldBlock) {
		t.Fatalf("TryPut on full queue: got %v, want ErrWouldBlock", err)
	}
}

func TestTryGetEmptyReturnsWouldBlock(t *testing.T) {
	q, err := queue.New(1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := q.TryGet(); !errors.Is(err, queue.ErrWouldBlock) {
		t.Fatalf("TryGet on empty queue: got %v, want ErrWouldBlock", err)
	}
}

// TestFIFOUnderSingleProducer checks that values come out in the
// order they went in.
func TestFIFOUnderSingleProducer(t *testing.T) {
	q, err := queue.New(4)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"one", "two", "three", "four"}
	for _, s := range want {
		if err := q.Put(s); err != nil {
			t.Fatalf("Put(%q): %v", s, err)
		}
	}
	for _, w := range want {
		got, err := q.Get()
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got != w {
			t.Fatalf("Get: got %q, want %q", got, w)
		}
	}
}

// TestCapacityOneBlocksThenUnblocks checks that a capacity-1 queue
// blocks its producer after one Put and unblocks after one Get.
func TestCapacityOneBlocksThenUnblocks(t *testing.T) {
	q, err := queue.New(1)
	if err != nil {
		t.Fatal(err)
	}
	if err := q.Put("first"); err != nil {
		t.Fatal(err)
	}

	putDone := make(chan error, 1)
	go func() {
		putDone <- q.Put("second")
	}()

	select {
	case <-putDone:
		t.Fatal("second Put returned before any Get freed a slot")
	case <-time.After(50 * time.Millisecond):
	}

	if got, err := q.Get(); err != nil || got != "first" {
		t.Fatalf("Get: got (%q, %v), want (\"first\", nil)", got, err)
	}

	select {
	case err := <-putDone:
		if err != nil {
			t.Fatalf("second Put: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("second Put stayed blocked after a Get freed a slot")
	}

	if got, err := q.Get(); err != nil || got != "second" {
		t.Fatalf("Get: got (%q, %v), want (\"second\", nil)", got, err)
	}
}

func TestEmptyStringIsValidPayload(t *testing.T) {
	q, err := queue.New(1)
	if err != nil {
		t.Fatal(err)
	}
	if err := q.Put(""); err != nil {
		t.Fatal(err)
	}
	got, err := q.Get()
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Fatalf("Get: got %q, want empty string", got)
	}
}

func TestFinishedLatchIndependentOfEmptiness(t *testing.T) {
	q, err := queue.New(4)
	if err != nil {
		t.Fatal(err)
	}
	if err := q.Put("residual"); err != nil {
		t.Fatal(err)
	}

	done := make(chan struct{})
	go func() {
		q.WaitFinished()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("WaitFinished returned before SignalFinished")
	case <-time.After(30 * time.Millisecond):
	}

	q.SignalFinished()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WaitFinished did not return after SignalFinished")
	}

	// The queue still holds "residual" — finished does not imply empty.
	if got, err := q.Get(); err != nil || got != "residual" {
		t.Fatalf("Get after finished: got (%q, %v), want (\"residual\", nil)", got, err)
	}
}

func TestDestroyUnblocksWaitersAndIsIdempotent(t *testing.T) {
	q, err := queue.New(1)
	if err != nil {
		t.Fatal(err)
	}
	if err := q.Put("only"); err != nil {
		t.Fatal(err)
	}

	putDone := make(chan error, 1)
	go func() {
		putDone <- q.Put("blocked forever without Destroy")
	}()

	time.Sleep(30 * time.Millisecond)
	q.Destroy()
	q.Destroy() // idempotent

	select {
	case err := <-putDone:
		if !errors.Is(err, queue.ErrClosed) {
			t.Fatalf("Put after Destroy: got %v, want ErrClosed", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Put stayed blocked after Destroy")
	}

	if _, err := q.Get(); !errors.Is(err, queue.ErrClosed) {
		t.Fatalf("Get after Destroy: got %v, want ErrClosed", err)
	}
}

// TestConcurrentProducersPreserveCount exercises multiple producers
// against a single consumer: FIFO order across producers is not
// specified, but every item placed must be received exactly once.
func TestConcurrentProducersPreserveCount(t *testing.T) {
	if buildtags.Enabled {
		t.Skip("skip: stress test requires concurrent access, not worth the race detector's slowdown")
	}

	q, err := queue.New(8)
	if err != nil {
		t.Fatal(err)
	}
	const producers = 5
	const perProducer = 50

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				if err := q.Put("x"); err != nil {
					t.Errorf("producer %d Put: %v", id, err)
					return
				}
			}
		}(p)
	}

	received := 0
	done := make(chan struct{})
	go func() {
		for received < producers*perProducer {
			if _, err := q.Get(); err != nil {
				t.Errorf("Get: %v", err)
				return
			}
			received++
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("received %d of %d items before timeout", received, producers*perProducer)
	}
	wg.Wait()
}
