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

package test

import "testing"

func TestID(t *testing.T) {
	ExpectEquality(t, id(), "")
	ExpectEquality(t, id("frame"), "frame: ")
	ExpectEquality(t, id("frame", 10, true), "frame 10 true: ")
}

func TestExpect(t *testing.T) {
	ExpectSuccess(t, expect(t, true))
	ExpectSuccess(t, expect(t, nil))
	ExpectFailure(t, expect(t, errString("fail")))
}

type errString string

func (e errString) Error() string {
	return string(e)
}
