// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nlj

import (
	"code.hybscloud.com/kont"
)

// transferSignal is the panic value the jump engine uses to carry control
// from a transfer site to the targeted Mark. It identifies both the owning
// State and the target buffer, so recovery points of other instances, and
// ordinary panics, pass through untouched.
type transferSignal struct {
	state  *State
	target *Buffer
}

// String makes an escaped signal print a diagnostic instead of a bare
// struct dump. A signal escapes only when Transfer is called on a
// goroutine that holds none of the State's Mark frames.
func (sig *transferSignal) String() string {
	return "nlj: transfer escaped its recovery-point stack"
}

// Mark installs a recovery point and runs body inside it (jump engine).
//
// Right(result): the region was entered and completed normally; the
// recovery point has been removed in LIFO order.
// Left(payload): control came back via a transfer; body's remaining frames
// were discarded without running their own cleanup.
//
// The Buffer lives in Mark's own frame, one per nesting level. body
// receives it so deep callees can transfer to this specific point rather
// than the nearest one; most bodies ignore the argument.
func Mark[R any](s *State, body func(*Buffer) R) (result kont.Either[Payload, R]) {
	var b Buffer
	s.mark(&b)
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		result = kont.Left[Payload, R](s.settle(&b, r))
	}()
	r := body(&b)
	s.unmark()
	return kont.Right[Payload](r)
}

// Transfer jumps to the nearest enclosing recovery point, delivering v
// (jump engine). It never returns: the target is popped before the jump,
// then the signal unwinds every frame between the call site and the
// target's Mark. With no active recovery point the fatal hook is invoked;
// the hook must not return.
func (s *State) Transfer(v Payload) {
	b := s.take(v)
	panic(&transferSignal{state: s, target: b})
}

// Transfer jumps to this specific enclosing recovery point, delivering v.
// Recovery points nested inside b are discarded from the stack, not
// unmarked; their buffers are never touched again. b must still be armed:
// transferring to a popped buffer is a caller programming error.
func (b *Buffer) Transfer(v Payload) {
	if !b.armed {
		panic("nlj: transfer to a popped recovery point")
	}
	s := b.owner
	for s.top != b {
		s.unmark()
	}
	s.unmark()
	b.payload = v
	panic(&transferSignal{state: s, target: b})
}

// settle decides how a panic crossing a recovery point is handled. A
// signal of this State targeting b has already been popped by the
// transfer: settle returns its payload. Anything else — ordinary panics,
// signals of other States, signals bound for an enclosing point — unwinds
// b's bookkeeping if still armed and resumes the panic. The caller must
// pass the value of a recover() made directly in its own deferred func.
func (s *State) settle(b *Buffer, r any) Payload {
	if sig, ok := r.(*transferSignal); ok && sig.state == s && sig.target == b {
		return b.payload
	}
	if b.armed {
		s.unmark()
	}
	panic(r)
}
