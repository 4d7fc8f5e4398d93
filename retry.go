// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nlj

import (
	"code.hybscloud.com/kont"
)

// Retry runs step under a fresh recovery point per attempt, at most
// attempts times (jump engine). An attempt that completes normally ends
// the loop with Right; a transfer ends the attempt and starts the next
// one. The final attempt's outcome is returned, so an exhausted loop
// yields Left with the last payload. attempts must be positive.
func Retry[R any](s *State, attempts int, step func(attempt int) R) kont.Either[Payload, R] {
	if attempts <= 0 {
		panic("nlj: Retry needs at least one attempt")
	}
	var last kont.Either[Payload, R]
	for i := range attempts {
		last = Mark(s, func(*Buffer) R {
			return step(i)
		})
		if last.IsRight() {
			break
		}
	}
	return last
}

// ExprRetry is Retry for Expr-world protocols: step builds a fresh
// protocol per attempt and each attempt runs under its own recovery
// point. attempts must be positive.
func ExprRetry[R any](s *State, attempts int, step func(attempt int) kont.Expr[R]) kont.Either[Payload, R] {
	if attempts <= 0 {
		panic("nlj: ExprRetry needs at least one attempt")
	}
	var last kont.Either[Payload, R]
	for i := range attempts {
		last = ExecExpr(s, step(i))
		if last.IsRight() {
			break
		}
	}
	return last
}
