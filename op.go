// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nlj

import (
	"code.hybscloud.com/kont"
)

// Raise is the effect operation for transferring control to the nearest
// enclosing recovery point (continuation engine).
// Perform(Raise{Value: v}) never resumes: the handling region pops its
// buffer and short-circuits with v as the Left outcome, discarding the
// frames between the raise site and the region boundary.
type Raise struct {
	kont.Phantom[struct{}]
	Value Payload
}

// transferDispatcher is the structural interface for transfer operations.
// Region handlers and the stepping driver dispatch on it rather than on
// the concrete op type.
type transferDispatcher interface {
	transferValue() Payload
}

func (r Raise) transferValue() Payload {
	return r.Value
}
