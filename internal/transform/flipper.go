// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transform

import "code.hybscloud.com/strmpipe/internal/stage"

func init() {
	stage.Register("flipper", func() stage.StageModule {
		return stage.New("flipper", flipperTransform, nil)
	})
}

// flipperTransform reverses s rune-wise.
func flipperTransform(s string) (string, bool) {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r), true
}
