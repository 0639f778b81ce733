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

// Package cartridgeloader is used to specify the program image that is to be
// run by the hardware core.
//
// A ProgramImage is the data of the program together with the address at
// which it is loaded. Images come from one of two places: the catalog of
// known programs or a binary supplied by the user. Catalog images are
// retrieved with the Fetch() function and uploaded images are read with
// ReadUpload(). The Loader type will read program data from either a local
// file or a http(s) URL, depending on the form of the filename.
//
// The StartAddress() function decides the load address of an image from its
// length. Catalog entries carry their own address and do not need it.
//
// The Selector type decides which of the two sources is effective. An
// uploaded image takes precedence over the catalog selection until a new
// catalog entry is selected.
package cartridgeloader
