// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nlj_test

import (
	"testing"

	"code.hybscloud.com/kont"
	"code.hybscloud.com/nlj"
)

func TestExecExprCompletes(t *testing.T) {
	st := nlj.New()
	outcome := nlj.ExecExpr(st, kont.ExprReturn(7))
	v, _ := outcome.GetRight()
	if v != 7 {
		t.Fatalf("got %d, want 7", v)
	}
	if st.Depth() != 0 {
		t.Fatalf("depth got %d, want 0", st.Depth())
	}
}

func TestExprRaise(t *testing.T) {
	st := nlj.New()
	outcome := nlj.ExecExpr(st, nlj.ExprRaise[int]("expr-boom"))
	p, resumed := outcome.GetLeft()
	if !resumed {
		t.Fatal("expected Left, got Right")
	}
	if p != "expr-boom" {
		t.Fatalf("payload got %v, want %q", p, "expr-boom")
	}
}

func TestExprRaiseMidProtocol(t *testing.T) {
	st := nlj.New()
	protocol := kont.ExprBind(kont.ExprReturn(3), func(n int) kont.Expr[int] {
		return nlj.ExprRaise[int](n * 10)
	})
	outcome := nlj.ExecExpr(st, protocol)
	p, resumed := outcome.GetLeft()
	if !resumed {
		t.Fatal("expected Left, got Right")
	}
	if p != 30 {
		t.Fatalf("payload got %v, want 30", p)
	}
}

func TestGuardExprRecovers(t *testing.T) {
	st := nlj.New()
	protocol := kont.ExprBind(
		nlj.GuardExpr(st, nlj.ExprRaise[int]("inner")),
		func(e kont.Either[nlj.Payload, int]) kont.Expr[string] {
			p, resumed := e.GetLeft()
			if !resumed {
				t.Fatal("guard expected Left, got Right")
			}
			return kont.ExprReturn("recovered: " + p.(string))
		},
	)
	outcome := nlj.ExecExpr(st, protocol)
	v, _ := outcome.GetRight()
	if v != "recovered: inner" {
		t.Fatalf("got %q, want %q", v, "recovered: inner")
	}
}

func TestGuardExprCompletes(t *testing.T) {
	st := nlj.New()
	protocol := kont.ExprBind(
		nlj.GuardExpr(st, kont.ExprReturn(4)),
		func(e kont.Either[nlj.Payload, int]) kont.Expr[int] {
			v, ok := e.GetRight()
			if !ok {
				t.Fatal("guard expected Right, got Left")
			}
			return kont.ExprReturn(v + 1)
		},
	)
	outcome := nlj.ExecExpr(st, protocol)
	v, _ := outcome.GetRight()
	if v != 5 {
		t.Fatalf("got %d, want 5", v)
	}
}
