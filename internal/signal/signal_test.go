// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package signal_test

import (
	"sync"
	"testing"
	"time"

	"code.hybscloud.com/strmpipe/internal/buildtags"
	"code.hybscloud.com/strmpipe/internal/signal"
)

func TestSignalSetBeforeWaitDoesNotBlock(t *testing.T) {
	s := signal.New()
	s.Set()

	done := make(chan struct{})
	go func() {
		s.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait blocked despite a prior Set")
	}
}

func TestSignalResetThenWaitBlocksUntilSet(t *testing.T) {
	s := signal.New()

	done := make(chan struct{})
	go func() {
		s.Wait()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Wait returned before Set")
	case <-time.After(50 * time.Millisecond):
	}

	s.Set()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after Set")
	}
}

// TestSignalBroadcastReleasesAllWaiters checks that a single Set
// releases every one of n blocked waiters.
func TestSignalBroadcastReleasesAllWaiters(t *testing.T) {
	if buildtags.Enabled {
		t.Skip("skip: stress test requires concurrent access, not worth the race detector's slowdown")
	}

	const n = 16
	s := signal.New()

	var wg sync.WaitGroup
	released := make(chan int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			s.Wait()
			released <- id
		}(i)
	}

	// Give every goroutine a chance to reach Wait before signaling.
	time.Sleep(50 * time.Millisecond)
	s.Set()

	waitDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(waitDone)
	}()

	select {
	case <-waitDone:
	case <-time.After(time.Second):
		t.Fatal("not all waiters were released by one Set")
	}
	close(released)

	count := 0
	for range released {
		count++
	}
	if count != n {
		t.Fatalf("got %d waiters released, want %d", count, n)
	}
}

func TestSignalIdempotentSet(t *testing.T) {
	s := signal.New()
	s.Set()
	s.Set()
	if !s.IsSet() {
		t.Fatal("IsSet false after two Set calls")
	}
}

func TestSignalResetThenSetAgain(t *testing.T) {
	s := signal.New()
	s.Set()
	s.Reset()
	if s.IsSet() {
		t.Fatal("IsSet true after Reset")
	}

	done := make(chan struct{})
	go func() {
		s.Wait()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Wait returned before the second Set")
	case <-time.After(30 * time.Millisecond):
	}

	s.Set()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after the second Set")
	}
}
