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

import (
	"crypto/sha1"
	"fmt"
)

// Origin indicates where a ProgramImage came from.
type Origin int

// List of valid Origin values.
const (
	Catalog Origin = iota
	Uploaded
)

func (o Origin) String() string {
	switch o {
	case Catalog:
		return "catalog"
	case Uploaded:
		return "uploaded"
	}
	return "unknown origin"
}

// the annotation added to the name of uploaded images
const uploadedAnnotation = " [uploaded]"

// ProgramImage is the program data and the address at which it should be
// loaded. A ProgramImage cannot be changed once it has been created. The
// zero value is an empty image.
type ProgramImage struct {
	name         string
	startAddress uint16
	data         []uint8
	origin       Origin
	hash         string
}

// NewCatalogImage creates a ProgramImage for a program from the catalog. The
// start address is supplied by the catalog entry. The data is copied.
func NewCatalogImage(name string, startAddress uint16, data []uint8) ProgramImage {
	return newImage(name, startAddress, data, Catalog)
}

// NewUploadedImage creates a ProgramImage for a program supplied by the
// user. The name is annotated to show that it is not from the catalog and the
// start address is decided by the length of the data. The data is copied.
func NewUploadedImage(name string, data []uint8) ProgramImage {
	return newImage(name+uploadedAnnotation, StartAddress(len(data)), data, Uploaded)
}

func newImage(name string, startAddress uint16, data []uint8, origin Origin) ProgramImage {
	img := ProgramImage{
		name:         name,
		startAddress: startAddress,
		data:         make([]uint8, len(data)),
		origin:       origin,
	}
	copy(img.data, data)
	img.hash = fmt.Sprintf("%x", sha1.Sum(img.data))
	return img
}

// Name of the program. Names of uploaded programs are annotated.
func (img ProgramImage) Name() string {
	return img.name
}

// StartAddress is the address at which the program is loaded.
func (img ProgramImage) StartAddress() uint16 {
	return img.startAddress
}

// Data returns a copy of the program data.
func (img ProgramImage) Data() []uint8 {
	d := make([]uint8, len(img.data))
	copy(d, img.data)
	return d
}

// Len returns the number of bytes in the program data.
func (img ProgramImage) Len() int {
	return len(img.data)
}

// Empty returns true if there is no program data.
func (img ProgramImage) Empty() bool {
	return len(img.data) == 0
}

// Origin of the program image.
func (img ProgramImage) Origin() Origin {
	return img.origin
}

// Hash is the SHA-1 hash of the program data.
func (img ProgramImage) Hash() string {
	return img.hash
}

func (img ProgramImage) String() string {
	return fmt.Sprintf("%s (%d bytes at %#04x)", img.name, len(img.data), img.startAddress)
}
