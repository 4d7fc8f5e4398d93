// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nlj

import (
	"fmt"

	"code.hybscloud.com/lfq"
)

// interruptCapacity is the bounded capacity of the per-State interrupt
// mailbox. 4 keeps the ring buffer within a single cache line while
// leaving room for a short burst of postings between safe points.
const interruptCapacity = 4

// Payload is the single value a transfer delivers to the recovery point it
// resumes. The mechanism never inspects it; interpreters typically pass a
// handle to a runtime-owned error descriptor.
type Payload = any

// Buffer is one recovery point record. Mark allocates it in the frame of
// the protected region and links it onto the owning State's stack; a
// transfer consumes it. The prev link is a stack-order bookmark only,
// never an owning reference. A Buffer is invalid once popped.
type Buffer struct {
	prev    *Buffer
	owner   *State
	payload Payload
	armed   bool
}

// State is one independent recovery-point stack: the per-instance
// top-of-stack pointer plus the fatal hook and the interrupt mailbox.
// A State is confined to the logical thread of control that owns it;
// PostInterrupt is the only method safe to call from another goroutine.
type State struct {
	top    *Buffer
	fatal  func(Payload)
	serial Serial
	intrQ  lfq.SPSC[Payload]
}

// New creates an empty recovery-point stack with the default fatal hook.
// The interrupt mailbox is a bounded lock-free SPSC queue; PostInterrupt
// returns iox.ErrWouldBlock while it is full.
func New() *State {
	s := &State{
		fatal:  defaultFatal,
		serial: nextSerial(),
	}
	s.intrQ.Init(interruptCapacity)
	return s
}

// Serial returns the serial number assigned to this instance.
func (s *State) Serial() Serial {
	return s.serial
}

// OnFatal replaces the hook invoked when a transfer finds no active
// recovery point. The hook must not return; a host runtime typically
// prints a diagnostic and halts. The default hook panics.
func (s *State) OnFatal(hook func(Payload)) {
	s.fatal = hook
}

// Protected reports whether at least one recovery point is active.
func (s *State) Protected() bool {
	return s.top != nil
}

// Depth returns the number of active recovery points.
func (s *State) Depth() int {
	n := 0
	for b := s.top; b != nil; b = b.prev {
		n++
	}
	return n
}

// mark links b as the new top of the recovery-point stack.
func (s *State) mark(b *Buffer) {
	b.prev = s.top
	b.owner = s
	b.armed = true
	s.top = b
}

// unmark pops the current top without restoring any context.
// Calling it with an empty stack is a caller programming error.
func (s *State) unmark() {
	b := s.top
	if b == nil {
		panic("nlj: unmark with no active recovery point")
	}
	s.top = b.prev
	b.armed = false
}

// take pops the buffer a transfer is about to resume and stores v in it.
// The pop happens before any context restoration, so re-entrant transfers
// during restoration observe the new top. With an empty stack the fatal
// hook is invoked; if the hook returns, take panics unconditionally since
// resuming would land in undefined stack state.
func (s *State) take(v Payload) *Buffer {
	b := s.top
	if b == nil {
		s.fatal(v)
		panic("nlj: fatal hook returned")
	}
	s.top = b.prev
	b.armed = false
	b.payload = v
	return b
}

// defaultFatal aborts on a transfer raised with no active recovery point.
func defaultFatal(v Payload) {
	panic(fmt.Sprintf("nlj: transfer with no active recovery point: %v", v))
}
