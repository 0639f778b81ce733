// This file is part of vcsplay.
//
// vcsplay is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vcsplay is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vcsplay.  If not, see <https://www.gnu.org/licenses/>.

package test_test

import (
	"errors"
	"testing"
	"time"

	"github.com/vcsplay/vcsplay/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"), "error value")
	test.ExpectSuccess(t, test.ExpectFailure(t, false))
}

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil, "untyped nil")
	test.ExpectSuccess(t, test.ExpectSuccess(t, true))
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectEquality(t, true, true)
	test.ExpectEquality(t, uint16(0xf800), 0xf800, "tagged")
	test.ExpectEquality(t, "collect-01", "collect-01")
}

func TestExpectInequality(t *testing.T) {
	test.ExpectInequality(t, 11, 5+5)
	test.ExpectInequality(t, true, false)
	test.ExpectInequality(t, uint32(0x000000ff), 0xffffffff)
}

func TestExpectApproximate(t *testing.T) {
	// tolerance is a fraction of the expected value
	test.ExpectApproximate(t, 10, 11, 0.1)
	test.ExpectApproximate(t, 59.9, 60.0, 0.01)
	test.ExpectApproximate(t, 60.5, 60.0, 0.01)

	// a zero tolerance requires an exact match
	test.ExpectApproximate(t, 100, 100, 0)

	// negative expected values have the range the right way round
	test.ExpectApproximate(t, -96, -100, 0.05)
	test.ExpectApproximate(t, -104.0, -100.0, 0.05)

	// named types
	test.ExpectApproximate(t, time.Millisecond*99, time.Millisecond*100, 0.02)
	test.ExpectApproximate(t, uint64(1000), uint64(1010), 0.01)
	test.ExpectApproximate(t, float32(0.5), float32(0.5), 0.001)

	test.ExpectSuccess(t, test.ExpectApproximate(t, 9.6, 10.0, 0.05))
}
