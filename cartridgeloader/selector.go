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

import "sync"

// Resolve decides which of the two images is the effective image. A
// non-empty uploaded image always wins. Returns false if neither image has
// any data.
func Resolve(selected ProgramImage, uploaded ProgramImage) (ProgramImage, bool) {
	if !uploaded.Empty() {
		return uploaded, true
	}
	if !selected.Empty() {
		return selected, true
	}
	return ProgramImage{}, false
}

// Selector keeps track of the most recent catalog selection and the most
// recent upload. It is safe for concurrent use.
type Selector struct {
	crit     sync.Mutex
	selected ProgramImage
	uploaded ProgramImage
}

// SelectEntry sets the catalog image. Any uploaded image is cleared so that
// the catalog image becomes effective immediately.
func (sel *Selector) SelectEntry(img ProgramImage) {
	sel.crit.Lock()
	defer sel.crit.Unlock()
	sel.selected = img
	sel.uploaded = ProgramImage{}
}

// Upload sets the uploaded image. The catalog image is kept and will become
// effective again if the uploaded image is cleared.
func (sel *Selector) Upload(img ProgramImage) {
	sel.crit.Lock()
	defer sel.crit.Unlock()
	sel.uploaded = img
}

// ClearUpload removes the uploaded image.
func (sel *Selector) ClearUpload() {
	sel.crit.Lock()
	defer sel.crit.Unlock()
	sel.uploaded = ProgramImage{}
}

// Effective returns the image that should be running. See Resolve().
func (sel *Selector) Effective() (ProgramImage, bool) {
	sel.crit.Lock()
	defer sel.crit.Unlock()
	return Resolve(sel.selected, sel.uploaded)
}
