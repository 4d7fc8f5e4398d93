// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

package nlj_test

import "testing"

// skipRace is a no-op without the race detector; see skip_race_test.go.
func skipRace(testing.TB) {}
