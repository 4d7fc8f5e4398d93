// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nlj_test

import (
	"code.hybscloud.com/kont"
	"code.hybscloud.com/nlj"
)

// drive evaluates protocol via the Step+Advance loop, standing in for an
// event-loop interpreter that owns the recovery point.
func drive[R any](protocol kont.Expr[R]) kont.Either[nlj.Payload, R] {
	result, susp := nlj.Step[R](protocol)
	for susp != nil {
		result, susp = nlj.Advance(susp)
	}
	return result
}
