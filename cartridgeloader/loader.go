// This file is part of Gopher2A03.
//
// Gopher2A03 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2A03 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2A03.  If not, see <https://www.gnu.org/licenses/>.

package cartridgeloader

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopher2a03/gopher2a03/curated"
)

// error patterns
const (
	LoadError         = "cartridgeloader: %v"
	HTTPError         = "cartridgeloader: %s"
	UnsupportedScheme = "cartridgeloader: unsupported URL scheme (%s)"
	UnexpectedHash    = "cartridgeloader: unexpected hash value"
	NoROMFile         = "cartridgeloader: no ROM file found in archive"
	UnsupportedFormat = "cartridgeloader: unsupported file format (%s)"
	TooLarge          = "cartridgeloader: file exceeds maximum size"
)

// FileExtensions is the list of file extensions that are recognised as ROM
// images.
var FileExtensions = [...]string{".NES"}

// ArchiveExtensions is the list of file extensions that are recognised as
// archives.
var ArchiveExtensions = [...]string{".ZIP", ".7Z", ".RAR", ".GZ"}

// maximum size of a ROM image. this is larger than any iNES file can be
const maxROMSize = 8 * 1024 * 1024

// Loader is used to specify the cartridge to load into the NES.
type Loader struct {
	// filename of cartridge to load. can be a URL
	Filename string

	// the name of the ROM image. the same as the base of Filename unless the
	// image was extracted from an archive
	Name string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload
	// the data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns the name of the ROM image without the path or file
// extension.
func (cl Loader) ShortName() string {
	name := cl.Name
	if name == "" {
		name = filepath.Base(cl.Filename)
	}
	for {
		ext := filepath.Ext(name)
		if ext == "" || !isKnownExtension(ext) {
			break
		}
		name = strings.TrimSuffix(name, ext)
	}
	return name
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(cl.Filename)
	if err == nil && len(u.Scheme) > 1 {
		scheme = u.Scheme
	}

	var raw []byte

	switch scheme {
	case "http", "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return curated.Errorf(LoadError, curated.Errorf(HTTPError, resp.Status))
		}

		raw, err = limitedRead(resp.Body)
		if err != nil {
			return err
		}

	case "file":
		f, err := os.Open(cl.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer f.Close()

		raw, err = limitedRead(f)
		if err != nil {
			return err
		}

	default:
		return curated.Errorf(UnsupportedScheme, scheme)
	}

	data, name, err := extract(raw, cl.Filename)
	if err != nil {
		return err
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf(UnexpectedHash)
	}

	cl.Hash = hash
	cl.Data = data
	cl.Name = name

	return nil
}

// limitedRead reads from r up to maxROMSize bytes
func limitedRead(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxROMSize+1))
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}
	if len(data) > maxROMSize {
		return nil, curated.Errorf(TooLarge)
	}
	return data, nil
}

func isKnownExtension(ext string) bool {
	ext = strings.ToUpper(ext)
	for _, e := range FileExtensions {
		if e == ext {
			return true
		}
	}
	for _, e := range ArchiveExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// isROMFile checks if a filename has one of the ROM file extensions
func isROMFile(name string) bool {
	ext := strings.ToUpper(filepath.Ext(name))
	for _, e := range FileExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// magic bytes for archive detection
var (
	magicZIP    = []byte{0x50, 0x4b, 0x03, 0x04}
	magicZIPEnd = []byte{0x50, 0x4b, 0x05, 0x06}
	magic7z     = []byte{0x37, 0x7a, 0xbc, 0xaf, 0x27, 0x1c}
	magicGzip   = []byte{0x1f, 0x8b}
	magicRAR    = []byte{0x52, 0x61, 0x72, 0x21}
	magicINES   = []byte{0x4e, 0x45, 0x53, 0x1a}
)

// extract the ROM image from the data if it is an archive. the filename is
// used if the archive type can not be decided by the data
func extract(data []byte, filename string) ([]byte, string, error) {
	base := filepath.Base(filename)

	switch {
	case bytes.HasPrefix(data, magicINES):
		return data, base, nil
	case bytes.HasPrefix(data, magicZIP), bytes.HasPrefix(data, magicZIPEnd):
		return extractFromZIP(data)
	case bytes.HasPrefix(data, magic7z):
		return extractFrom7z(data)
	case bytes.HasPrefix(data, magicRAR):
		return extractFromRAR(data)
	case bytes.HasPrefix(data, magicGzip):
		return extractFromGzip(data, base)
	}

	switch strings.ToUpper(filepath.Ext(filename)) {
	case ".ZIP":
		return extractFromZIP(data)
	case ".7Z":
		return extractFrom7z(data)
	case ".RAR":
		return extractFromRAR(data)
	case ".GZ":
		return extractFromGzip(data, base)
	}

	// the data is used as is if the file has a ROM extension. the cartridge
	// package will decide if the data is usable
	if isROMFile(filename) {
		return data, base, nil
	}

	return nil, "", curated.Errorf(UnsupportedFormat, base)
}
