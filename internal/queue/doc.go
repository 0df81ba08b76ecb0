// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package queue implements the bounded, single-consumer/multi-producer
// blocking FIFO that hands strings from one pipeline stage to the
// next.
//
// # Blocking discipline
//
// Put and Get each follow the same retry loop: attempt the operation
// non-blockingly (TryPut/TryGet); on ErrWouldBlock, Reset the relevant
// Signal, Wait on it, and retry. The Reset happens without the queue's
// mutex held, which is safe only because the next iteration re-checks
// the predicate (full/empty) under the mutex before acting on it — the
// Signal is a wakeup hint, never the source of truth.
//
//	for {
//	    if err := q.TryPut(s); err == nil {
//	        return nil
//	    }
//	    q.notFull.Reset()
//	    if full again { q.notFull.Wait() }
//	}
//
// # Finished latch
//
// A BoundedQueue also exposes a "finished" Signal, set once by the
// owning stage when it observes the pipeline sentinel. Finished is
// independent of emptiness: a queue can be empty without being
// finished (no sentinel has arrived yet) and finished while still
// holding items a concurrent Destroy must free.
package queue
