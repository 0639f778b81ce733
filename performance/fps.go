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

package performance

import (
	"fmt"
	"math"
)

// IdealFPS is the frame rate of the NTSC display.
const IdealFPS = 60.0

// CalcFPS takes the the number of frames and duration (in seconds) and returns
// the frames-per-second and the accuracy of that value as a percentage of
// IdealFPS.
func CalcFPS(numFrames int, duration float64) (fps float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	fps = float64(numFrames) / duration
	accuracy = 100 * float64(numFrames) / (duration * IdealFPS)
	return fps, accuracy
}

// FormatFPS returns the FPS value as a whole number, padded to three digits.
// Values outside the range of three digits are clamped.
func FormatFPS(fps float64) string {
	switch {
	case math.IsNaN(fps) || fps < 0:
		return "000 fps"
	case fps > 999:
		return "999 fps"
	}
	return fmt.Sprintf("%03d fps", int(fps))
}
