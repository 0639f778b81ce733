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

package cartridgeloader_test

import (
	"testing"

	"github.com/vcsplay/vcsplay/cartridgeloader"
	"github.com/vcsplay/vcsplay/test"
)

func TestStartAddress(t *testing.T) {
	for _, n := range []int{1, 2, 800, 2047, 2048} {
		test.ExpectEquality(t, cartridgeloader.StartAddress(n), cartridgeloader.SmallStartAddress, n)
	}
	for _, n := range []int{2049, 3000, 4096, 8192, 65536} {
		test.ExpectEquality(t, cartridgeloader.StartAddress(n), cartridgeloader.LargeStartAddress, n)
	}
	test.ExpectEquality(t, cartridgeloader.StartAddress(2048), uint16(0xf800))
	test.ExpectEquality(t, cartridgeloader.StartAddress(2049), uint16(0xf000))
}

func TestImage(t *testing.T) {
	data := []uint8{1, 2, 3}
	img := cartridgeloader.NewCatalogImage("collect-01", 0xf800, data)

	// image is not affected by changes to the original data or to the data
	// returned by Data()
	data[0] = 100
	test.ExpectEquality(t, img.Data()[0], uint8(1))
	d := img.Data()
	d[1] = 100
	test.ExpectEquality(t, img.Data()[1], uint8(2))

	test.ExpectEquality(t, img.Len(), 3)
	test.ExpectEquality(t, img.Origin(), cartridgeloader.Catalog)
	test.ExpectEquality(t, img.Hash(), "7037807198c22a7d2b0807371d763779a84fdfcf")

	var empty cartridgeloader.ProgramImage
	test.ExpectSuccess(t, empty.Empty())
}

func TestResolve(t *testing.T) {
	entry := cartridgeloader.NewCatalogImage("collect-01", 0xf800, make([]uint8, 800))

	// uploaded image always takes precedence, regardless of the catalog
	// image and the catalog image's address
	for _, n := range []int{1, 2048, 4096} {
		up := cartridgeloader.NewUploadedImage("test.bin", make([]uint8, n))
		img, ok := cartridgeloader.Resolve(entry, up)
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, img.Name(), "test.bin [uploaded]")
		test.ExpectEquality(t, img.Origin(), cartridgeloader.Uploaded)
		test.ExpectEquality(t, img.StartAddress(), cartridgeloader.StartAddress(n))
	}

	// empty upload means the catalog image is effective
	img, ok := cartridgeloader.Resolve(entry, cartridgeloader.ProgramImage{})
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, img.Name(), "collect-01")

	// neither source has any data
	_, ok = cartridgeloader.Resolve(cartridgeloader.ProgramImage{}, cartridgeloader.ProgramImage{})
	test.ExpectFailure(t, ok)
}

func TestSelector(t *testing.T) {
	var sel cartridgeloader.Selector

	_, ok := sel.Effective()
	test.ExpectFailure(t, ok)

	// upload with no catalog selection
	sel.Upload(cartridgeloader.NewUploadedImage("game.bin", make([]uint8, 4096)))
	img, ok := sel.Effective()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, img.StartAddress(), uint16(0xf000))

	// selecting a catalog entry clears the upload
	sel.SelectEntry(cartridgeloader.NewCatalogImage("collect-01", 0xf800, make([]uint8, 800)))
	img, ok = sel.Effective()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, img.Name(), "collect-01")
	test.ExpectEquality(t, img.Origin(), cartridgeloader.Catalog)

	// a new upload takes precedence over the existing catalog selection
	sel.Upload(cartridgeloader.NewUploadedImage("small.bin", make([]uint8, 2048)))
	img, ok = sel.Effective()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, img.Name(), "small.bin [uploaded]")
	test.ExpectEquality(t, img.StartAddress(), uint16(0xf800))

	// clearing the upload returns control to the catalog selection
	sel.ClearUpload()
	img, ok = sel.Effective()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, img.Name(), "collect-01")

	// an empty upload does not take precedence
	sel.Upload(cartridgeloader.ProgramImage{})
	img, _ = sel.Effective()
	test.ExpectEquality(t, img.Name(), "collect-01")
}

func TestExtensions(t *testing.T) {
	test.ExpectSuccess(t, cartridgeloader.HasProgramExtension("roms/pitfall.bin"))
	test.ExpectSuccess(t, cartridgeloader.HasProgramExtension("ADVENTURE.A26"))
	test.ExpectFailure(t, cartridgeloader.HasProgramExtension("notes.txt"))
	test.ExpectFailure(t, cartridgeloader.HasProgramExtension("bin"))
}
