// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transform

import (
	"strings"

	"code.hybscloud.com/strmpipe/internal/stage"
)

func init() {
	stage.Register("expander", func() stage.StageModule {
		return stage.New("expander", expanderTransform, nil)
	})
}

// expanderTransform inserts one space between every pair of adjacent
// runes: "hi" -> "h i". Strings of fewer than two runes have no
// adjacent pair and pass through unchanged.
func expanderTransform(s string) (string, bool) {
	r := []rune(s)
	if len(r) < 2 {
		return s, true
	}
	var b strings.Builder
	b.Grow(len(r)*2 - 1)
	for i, c := range r {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(c)
	}
	return b.String(), true
}
