// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nlj

import (
	"code.hybscloud.com/iox"
)

// PostInterrupt queues v for delivery on the State's owning thread of
// control: the owner's next PollInterrupt turns it into a transfer. This
// is the one State method safe to call from another goroutine, with a
// single posting goroutine per State (the mailbox is SPSC).
// Non-blocking: returns iox.ErrWouldBlock while the mailbox is full.
func (s *State) PostInterrupt(v Payload) error {
	return s.intrQ.Enqueue(&v)
}

// PostInterruptWait blocks until the mailbox accepts v, backing off on
// iox.ErrWouldBlock with iox.Backoff (the owner drains between polls).
func (s *State) PostInterruptWait(v Payload) {
	var bo iox.Backoff
	for s.PostInterrupt(v) != nil {
		bo.Wait()
	}
}

// PollInterrupt is called by the owning thread at safe points. With an
// empty mailbox it returns immediately. Otherwise it does not return:
// the oldest pending payload is delivered to the nearest enclosing
// recovery point via Transfer. Remaining payloads stay queued for later
// polls, preserving posting order.
func (s *State) PollInterrupt() {
	v, err := s.intrQ.Dequeue()
	if err != nil {
		return
	}
	s.Transfer(v)
}
