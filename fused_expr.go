// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nlj

import (
	"code.hybscloud.com/kont"
)

// exprReturnFrame is pre-allocated to eliminate heap escapes when boxing
// the empty ReturnFrame into kont.Frame during Expr-world construction.
var exprReturnFrame kont.Frame = kont.ReturnFrame{}

// resumeTransfer guards the unreachable resume path of a raise.
// Named function produces a static function value, consistent with kont
// convention.
func resumeTransfer(kont.Erased) kont.Erased {
	panic("nlj: resumed past a transfer")
}

// ExprRaise transfers v to the nearest enclosing recovery point
// (Expr-world). Built as a direct EffectFrame rather than composed from
// ExprPerform: a raise has no continuation to chain, so nothing follows
// the operation.
func ExprRaise[A any](v Payload) kont.Expr[A] {
	ef := kont.AcquireEffectFrame()
	ef.Operation = Raise{Value: v}
	ef.Resume = resumeTransfer
	ef.Next = exprReturnFrame
	return kont.ExprSuspend[A](ef)
}

// GuardExpr runs inner under its own nested recovery point (Expr-world)
// and reflects the outcome into the protocol as an Either value instead
// of letting a transfer unwind past this point. Built as an explicit
// BindFrame so the nested region runs only when the protocol reaches it,
// never at construction.
func GuardExpr[A any](s *State, inner kont.Expr[A]) kont.Expr[kont.Either[Payload, A]] {
	bf := kont.AcquireBindFrame()
	bf.F = func(kont.Erased) kont.Expr[kont.Erased] {
		result := ExecExpr(s, inner)
		return kont.Expr[kont.Erased]{Value: kont.Erased(result), Frame: exprReturnFrame}
	}
	bf.Next = exprReturnFrame
	var zero kont.Either[Payload, A]
	return kont.Expr[kont.Either[Payload, A]]{Value: zero, Frame: bf}
}
