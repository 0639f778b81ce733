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

// Package digest contains a presentation surface that produces a
// cryptographic hash of every frame presented to it. The hash can be used to
// compare the output of subsequent executions. If a new hash differs from a
// previously recorded value then something has changed.
//
// The hash of each frame is chained to the hash of the previous frame, so
// the final hash is a summary of every frame presented since the last
// reset.
package digest

// Digest implementations should return a cryptographic hash in response to a
// Hash() request. Generation of the hash achieved via another interface.
type Digest interface {
	Hash() string
	ResetDigest()
}
