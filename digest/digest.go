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

// Package digest is used to create hashes of the output devices. The hashes
// are chained: every call to Update() includes the previous hash in the new
// one. Comparing a hash is a quick way of confirming that a program has
// produced the same output as a previous run.
package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
)

// Digest implementations compute a hash of device output.
type Digest interface {
	Hash() string
	ResetDigest()
}

// ScreenSource is the interface to the bitmap screen.
type ScreenSource interface {
	Rows() []uint32
}

// TerminalSource is the interface to the text terminal.
type TerminalSource interface {
	Rows() []string
}

type chain struct {
	digest [sha1.Size]byte
	buf    []byte
}

func (c chain) Hash() string {
	return fmt.Sprintf("%x", c.digest)
}

func (c *chain) ResetDigest() {
	c.digest = [sha1.Size]byte{}
}

// begin returns the buffer with the previous digest at its head.
func (c *chain) begin() []byte {
	c.buf = append(c.buf[:0], c.digest[:]...)
	return c.buf
}

func (c *chain) end(buf []byte) {
	c.buf = buf
	c.digest = sha1.Sum(c.buf)
}

// Screen is a chained digest of the screen bitmap.
type Screen struct {
	chain
	src ScreenSource
}

// NewScreen is the preferred method of initialisation for the Screen type.
func NewScreen(src ScreenSource) *Screen {
	return &Screen{src: src}
}

// Update adds the current state of the screen to the digest.
func (dig *Screen) Update() {
	buf := dig.begin()
	for _, r := range dig.src.Rows() {
		buf = binary.LittleEndian.AppendUint32(buf, r)
	}
	dig.end(buf)
}

// Terminal is a chained digest of the terminal rows.
type Terminal struct {
	chain
	src TerminalSource
}

// NewTerminal is the preferred method of initialisation for the Terminal type.
func NewTerminal(src TerminalSource) *Terminal {
	return &Terminal{src: src}
}

// Update adds the current state of the terminal to the digest. Every row is
// terminated with a zero byte so that the division into rows is part of the
// hash.
func (dig *Terminal) Update() {
	buf := dig.begin()
	for _, r := range dig.src.Rows() {
		buf = append(buf, r...)
		buf = append(buf, 0)
	}
	dig.end(buf)
}
