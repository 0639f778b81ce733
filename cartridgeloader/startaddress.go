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

package cartridgeloader

// The two load addresses. Programs of 2K or less are mirrored into the top
// half of the 4K cartridge space.
const (
	LargeStartAddress uint16 = 0xf000
	SmallStartAddress uint16 = 0xf800
)

// the largest program that is loaded at SmallStartAddress
const smallProgramSize = 2048

// StartAddress returns the load address for a program of the specified
// length in bytes.
func StartAddress(length int) uint16 {
	if length > smallProgramSize {
		return LargeStartAddress
	}
	return SmallStartAddress
}
