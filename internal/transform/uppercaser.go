// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transform

import (
	"strings"

	"code.hybscloud.com/strmpipe/internal/stage"
)

func init() {
	stage.Register("uppercaser", func() stage.StageModule {
		return stage.New("uppercaser", uppercaserTransform, nil)
	})
}

func uppercaserTransform(s string) (string, bool) {
	return strings.ToUpper(s), true
}
