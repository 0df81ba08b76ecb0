// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package console owns the single buffered stdout sink shared by the
// logger and typewriter transforms and the pipeline's completion
// line. A shared sink with a mutex around each write keeps any single
// write from interleaving with another when stages run concurrently;
// typewriter writes one rune per call, so its line can still be
// interleaved with other output. Flushing after every write keeps
// output visible immediately rather than batched behind the next write.
package console

import (
	"bufio"
	"io"
	"os"
	"sync"
)

var (
	mu     sync.Mutex
	writer = bufio.NewWriterSize(os.Stdout, 4096)
)

// SetOutput redirects the shared sink, for tests that want to capture
// output instead of writing to the real stdout.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	writer = bufio.NewWriterSize(w, 4096)
}

// WriteString writes s to the shared sink and flushes immediately.
func WriteString(s string) error {
	mu.Lock()
	defer mu.Unlock()
	if _, err := writer.WriteString(s); err != nil {
		return err
	}
	return writer.Flush()
}

// Flush forces any buffered bytes out. Normally a no-op since
// WriteString flushes itself; exposed for shutdown symmetry with the
// spec's atomicity requirement.
func Flush() error {
	mu.Lock()
	defer mu.Unlock()
	return writer.Flush()
}
