// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package nlj provides a non-local control-transfer primitive: recovery
// points an interpreter marks in its execution context and later jumps back
// to from arbitrarily deep call nesting, delivering a payload value and
// discarding every frame in between.
//
// # Architecture
//
//   - Recovery-point stack: an intrusive singly-linked stack of [Buffer]
//     records per [State], one State per interpreter instance. Pushes and
//     pops follow the nesting of protected regions in strict LIFO order.
//   - Jump engine: the portable context save/restore, delegating to the
//     host's own non-local-jump facility (panic/recover) behind the
//     tagged-result contract of [Mark]: Right means entered-and-completed,
//     Left carries the payload of the transfer that resumed the region.
//   - Continuation engine: transfers as effect operations on
//     [code.hybscloud.com/kont]. A region's handler pops the stack and
//     short-circuits, dropping the reified frame chain — the saved context
//     is the defunctionalized continuation itself.
//   - Interrupts: a bounded lock-free SPSC mailbox via
//     [code.hybscloud.com/lfq]. [State.PostInterrupt] returns
//     [code.hybscloud.com/iox.ErrWouldBlock] on backpressure.
//
// # API Topologies
//
//   - Regions: [Mark] (jump engine), [Exec], [ExecExpr] (continuation
//     engine), [Guard], [GuardExpr] (nested regions inside protocols),
//     [Retry], [ExprRetry] (fresh region per attempt).
//   - Transfers: [State.Transfer] to the nearest enclosing point,
//     [Buffer.Transfer] to a specific enclosing point, [RaiseValue] and
//     [ExprRaise] inside protocols.
//   - Stepping: [Step] and [Advance] settle protocols one transfer at a
//     time, making them easy to integrate with an event-loop interpreter.
//   - Bridge: [Reify] and [Reflect] convert protocols between the
//     closure-based and defunctionalized worlds.
//
// # Integration
//
//   - One [State] per interpreter instance. A State is confined to the
//     logical thread of control that owns it; [State.PostInterrupt] is the
//     one method safe to call from another goroutine.
//   - [State.OnFatal] installs the host's abort hook for transfers raised
//     with no active recovery point. The hook must not return.
//   - [State.PollInterrupt] turns externally raised conditions into
//     transfers at the owner's next safe point.
//
// # Example
//
//	st := nlj.New()
//	outcome := nlj.Mark(st, func(*nlj.Buffer) int {
//		risky(st) // may call st.Transfer(errObj) arbitrarily deep
//		return 1
//	})
//	if payload, resumed := outcome.GetLeft(); resumed {
//		handle(payload)
//	}
package nlj
