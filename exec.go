// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nlj

import (
	"code.hybscloud.com/kont"
)

// transferHandler implements kont.Handler for transfer effects inside one
// protected region. Dispatch pops the State's stack and short-circuits,
// dropping the remaining frame chain — the continuation engine's way of
// discarding the frames between the raise site and the region boundary.
type transferHandler[R any] struct {
	s   *State
	buf *Buffer
}

// Dispatch implements kont.Handler via structural interface assertion.
// When the pop exposes a recovery point other than this region's own —
// a jump-engine Mark nested between the region boundary and the raise
// site — delivery switches to the jump engine's signal.
func (h transferHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	top, ok := op.(transferDispatcher)
	if !ok {
		panic("nlj: unhandled effect in transferHandler")
	}
	b := h.s.take(top.transferValue())
	if b != h.buf {
		panic(&transferSignal{state: h.s, target: b})
	}
	return kont.Left[Payload, R](b.payload), false
}

// Exec runs a Cont-world protocol inside a fresh recovery point and
// returns the tagged outcome: Right on normal completion, Left with the
// payload of the transfer that resumed the region. Transfers of either
// engine raised inside the protocol settle here.
func Exec[R any](s *State, protocol kont.Eff[R]) (result kont.Either[Payload, R]) {
	var b Buffer
	s.mark(&b)
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		result = kont.Left[Payload, R](s.settle(&b, r))
	}()
	wrapped := kont.Map[kont.Resumed, R, kont.Either[Payload, R]](protocol, func(r R) kont.Either[Payload, R] {
		return kont.Right[Payload](r)
	})
	result = kont.Handle(wrapped, transferHandler[R]{s: s, buf: &b})
	if b.armed {
		s.unmark()
	}
	return result
}

// ExecExpr runs an Expr-world protocol inside a fresh recovery point and
// returns the tagged outcome: Right on normal completion, Left with the
// payload of the transfer that resumed the region.
func ExecExpr[R any](s *State, protocol kont.Expr[R]) (result kont.Either[Payload, R]) {
	var b Buffer
	s.mark(&b)
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		result = kont.Left[Payload, R](s.settle(&b, r))
	}()
	wrapped := kont.ExprMap(protocol, func(r R) kont.Either[Payload, R] {
		return kont.Right[Payload](r)
	})
	result = kont.HandleExpr(wrapped, transferHandler[R]{s: s, buf: &b})
	if b.armed {
		s.unmark()
	}
	return result
}
