// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transform

import (
	"fmt"

	"code.hybscloud.com/strmpipe/internal/console"
	"code.hybscloud.com/strmpipe/internal/stage"
)

func init() {
	stage.Register("logger", func() stage.StageModule {
		return stage.New("logger", loggerTransform, nil)
	})
}

// loggerTransform prints every item it sees and forwards it
// unchanged. Side-effecting, pass-through: keep is always true.
func loggerTransform(s string) (string, bool) {
	_ = console.WriteString(fmt.Sprintf("[logger] %s\n", s))
	return s, true
}
