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

// Package userinput translates input from the user into actions on the
// playback driver.
//
// Input can come from a GUI window, in the form of gui.Event values, or from
// the terminal that the application was started from. Keys pressed in the
// terminal are converted into gui.EventKeyboard values so that both sources
// are handled in the same way by HandleEvent().
//
// The userinput package also writes the status line to the terminal and can
// copy snapshots of the screen to the system clipboard.
package userinput
