// This file is part of Gopherv.
//
// Gopherv is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherv is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherv.  If not, see <https://www.gnu.org/licenses/>.

// Package imageloader is used to specify the raw binary images that are to be
// loaded into the memory of the emulated machine.
//
// An image is destined for either the text segment (program code) or the
// data segment of the memory map. When the image is ready to be loaded, the
// Load() function should be used. The Load() function handles loading of data
// from different sources. Currently local files and data over HTTP are
// supported.
//
// The loaded image is copied into memory with the Attach() function:
//
//	ld := imageloader.NewLoader("text.bin", imageloader.Text)
//	err := ld.Load()
//	if err != nil {
//		return err
//	}
//	err = ld.Attach(mem)
package imageloader
