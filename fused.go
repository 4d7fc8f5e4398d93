// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nlj

import (
	"code.hybscloud.com/kont"
)

// RaiseValue transfers v to the nearest enclosing recovery point
// (Cont-world). Fuses Perform(Raise{Value: v}) + Bind. The continuation
// never runs; the type parameter A only positions the raise inside a
// protocol of that result type.
func RaiseValue[A any](v Payload) kont.Eff[A] {
	return kont.Bind(kont.Perform(Raise{Value: v}), func(struct{}) kont.Eff[A] {
		panic("nlj: resumed past a transfer")
	})
}

// Guard runs inner under its own nested recovery point (Cont-world) and
// reflects the outcome into the protocol as an Either value instead of
// letting a transfer unwind past this point. The bind over Pure defers
// the nested region until the protocol reaches it.
func Guard[A any](s *State, inner kont.Eff[A]) kont.Eff[kont.Either[Payload, A]] {
	return kont.Bind(kont.Pure(struct{}{}), func(struct{}) kont.Eff[kont.Either[Payload, A]] {
		return kont.Pure(Exec(s, inner))
	})
}
