// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nlj

import (
	"code.hybscloud.com/kont"
)

// Step evaluates a protocol until completion or the first transfer
// (Expr-world stepping boundary). Returns (Right(result), nil) on
// completion, or (zero, suspension) when a transfer is pending. In this
// topology the driver loop itself owns the recovery point: an event-loop
// interpreter inspects the suspended operation and settles it with
// Advance.
func Step[R any](protocol kont.Expr[R]) (kont.Either[Payload, R], *kont.Suspension[kont.Either[Payload, R]]) {
	wrapped := kont.ExprMap(protocol, func(r R) kont.Either[Payload, R] {
		return kont.Right[Payload](r)
	})
	return kont.StepExpr(wrapped)
}

// Advance settles a suspended transfer. The suspension — the reified
// frames between the raise site and the driver — is discarded without
// resumption, and the payload becomes the Left outcome. A transfer ends
// the protocol, so the returned suspension is always nil.
func Advance[R any](susp *kont.Suspension[kont.Either[Payload, R]]) (kont.Either[Payload, R], *kont.Suspension[kont.Either[Payload, R]]) {
	top, ok := susp.Op().(transferDispatcher)
	if !ok {
		panic("nlj: unhandled effect in Advance")
	}
	v := top.transferValue()
	susp.Discard()
	return kont.Left[Payload, R](v), nil
}
