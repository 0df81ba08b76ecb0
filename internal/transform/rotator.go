// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transform

import "code.hybscloud.com/strmpipe/internal/stage"

func init() {
	stage.Register("rotator", func() stage.StageModule {
		return stage.New("rotator", rotatorTransform, nil)
	})
}

// rotatorTransform moves the last rune to the front: "abc" -> "cab".
// Operates on runes so multi-byte UTF-8 input rotates correctly.
func rotatorTransform(s string) (string, bool) {
	r := []rune(s)
	if len(r) < 2 {
		return s, true
	}
	rotated := make([]rune, len(r))
	rotated[0] = r[len(r)-1]
	copy(rotated[1:], r[:len(r)-1])
	return string(rotated), true
}
