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

// Package television turns the palette indices produced by a hardware core
// into a display-ready image. The Assembler type receives pixel data either
// as a full frame or as a series of partial updates (usually one scanline at
// a time) and decodes each palette index into RGBA colour data.
//
// There are two conventions for writing the decoded colour into the image,
// selected with the Mode type. PackedWord writes the packed colour in one go
// and ComponentSplit writes each component separately. The two modes produce
// identical images and the choice is a property of how the core delivers its
// pixels rather than a visual preference. In both cases the alpha component
// is forced to be opaque.
//
// Some cores deliver the colour register value rather than the palette
// index. The register value is always even and must be halved before lookup.
// This is selected with the halve argument to NewAssembler().
//
// The Overlay() function draws the guide rectangles that mark the blanking
// and sync areas of the screen. The overlay is a presentation concern and is
// applied to a copy of the assembled image.
package television
