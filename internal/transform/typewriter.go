// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transform

import (
	"time"

	"code.hybscloud.com/strmpipe/internal/console"
	"code.hybscloud.com/strmpipe/internal/stage"
)

// DefaultTypewriterDelay is the per-rune pacing the registered
// "typewriter" stage uses.
const DefaultTypewriterDelay = 15 * time.Millisecond

func init() {
	stage.Register("typewriter", func() stage.StageModule {
		return NewTypewriter(DefaultTypewriterDelay)
	})
}

// NewTypewriter builds a typewriter stage with the given per-rune
// delay. Exported so callers (tests, alternative hosts) can construct
// one with a zero delay instead of going through the Registry's
// fixed-delay default.
func NewTypewriter(delay time.Duration) stage.StageModule {
	return stage.New("typewriter", typewriterTransform(delay), nil)
}

// typewriterTransform writes s one rune at a time to the shared
// console sink, pausing delay between runes, then a trailing newline,
// and forwards s unchanged.
func typewriterTransform(delay time.Duration) stage.Transform {
	return func(s string) (string, bool) {
		for i, r := range s {
			if i > 0 && delay > 0 {
				time.Sleep(delay)
			}
			_ = console.WriteString(string(r))
		}
		_ = console.WriteString("\n")
		return s, true
	}
}
