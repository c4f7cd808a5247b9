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

package imageloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/gopherv/gopherv/curated"
	"github.com/gopherv/gopherv/hardware/memory/memorymap"
	"github.com/gopherv/gopherv/logger"
)

// Segment is the area of memory an image is loaded into.
type Segment int

// List of valid Segment values.
const (
	Text Segment = iota
	Data
)

func (seg Segment) String() string {
	switch seg {
	case Text:
		return "text"
	case Data:
		return "data"
	}
	return "unknown segment"
}

// Origin returns the address at which an image for the segment is loaded.
func (seg Segment) Origin() uint32 {
	if seg == Data {
		return memorymap.OriginData
	}
	return memorymap.OriginText
}

// Size returns the maximum size of an image for the segment.
func (seg Segment) Size() int {
	if seg == Data {
		return int(memorymap.MemtopData-memorymap.OriginData) + 1
	}
	return int(memorymap.MemtopText-memorymap.OriginText) + 1
}

// Memory is the interface to the memory an image is attached to. The ram.RAM
// type satisfies this interface.
type Memory interface {
	Load(address uint32, data []byte) error
}

// Loader is used to specify the image to load into the machine.
type Loader struct {
	// filename of image to load
	Filename string

	// the segment the image is for
	Segment Segment

	// expected hash of the loaded image. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string, segment Segment) Loader {
	return Loader{
		Filename: filename,
		Segment:  segment,
	}
}

// NewLoaderFromData creates a Loader for an image that is already in memory.
// The name is used only for identification.
func NewLoaderFromData(name string, segment Segment, data []byte) Loader {
	ld := Loader{
		Filename: name,
		Segment:  segment,
		Data:     data,
	}
	ld.Hash = fmt.Sprintf("%x", sha1.Sum(ld.Data))
	return ld
}

// ShortName returns a shortened version of the Loader filename.
func (ld Loader) ShortName() string {
	s := path.Base(ld.Filename)
	return strings.TrimSuffix(s, path.Ext(ld.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the image data. Filenames with a valid scheme will use that method to
// load the data. Currently supported schemes are HTTP and local files.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(ld.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf("imageloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("imageloader: %v", fmt.Sprintf("unexpected HTTP status (%s)", resp.Status))
		}

		ld.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("imageloader: %v", err)
		}

	case "file":
		fallthrough

	case "":
		ld.Data, err = os.ReadFile(ld.Filename)
		if err != nil {
			return curated.Errorf("imageloader: %v", err)
		}

	default:
		return curated.Errorf("imageloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if len(ld.Data) == 0 {
		return curated.Errorf("imageloader: %v", fmt.Sprintf("%s image is empty", ld.Segment))
	}

	if len(ld.Data) > ld.Segment.Size() {
		return curated.Errorf("imageloader: %v", fmt.Sprintf("%s image is too large (%d bytes)", ld.Segment, len(ld.Data)))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))

	// check for hash consistency
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf("imageloader: %v", "unexpected hash value")
	}

	ld.Hash = hash

	return nil
}

// Attach copies the loaded image into memory at the origin of the segment.
func (ld Loader) Attach(mem Memory) error {
	if !ld.HasLoaded() {
		return curated.Errorf("imageloader: %v", fmt.Sprintf("%s image has not been loaded", ld.Segment))
	}

	if len(ld.Data) > ld.Segment.Size() {
		return curated.Errorf("imageloader: %v", fmt.Sprintf("%s image is too large (%d bytes)", ld.Segment, len(ld.Data)))
	}

	if err := mem.Load(ld.Segment.Origin(), ld.Data); err != nil {
		return curated.Errorf("imageloader: %v", err)
	}

	logger.Logf(logger.Allow, "imageloader", "%s: %d bytes at %08x (%s)", ld.ShortName(), len(ld.Data), ld.Segment.Origin(), ld.Segment)

	return nil
}
