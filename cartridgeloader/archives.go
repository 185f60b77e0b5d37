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
	"archive/zip"
	"bytes"
	"compress/gzip"
	"io"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/gopher2a03/gopher2a03/curated"
	"github.com/nwaples/rardecode/v2"
)

// extractFromZIP extracts the first ROM file from a zip archive
func extractFromZIP(data []byte) ([]byte, string, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, "", curated.Errorf(LoadError, err)
	}

	for _, f := range r.File {
		if f.FileInfo().IsDir() || !isROMFile(f.Name) {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, "", curated.Errorf(LoadError, err)
		}
		defer rc.Close()

		d, err := limitedRead(rc)
		if err != nil {
			return nil, "", err
		}
		return d, filepath.Base(f.Name), nil
	}

	return nil, "", curated.Errorf(NoROMFile)
}

// extractFrom7z extracts the first ROM file from a 7z archive
func extractFrom7z(data []byte) ([]byte, string, error) {
	r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, "", curated.Errorf(LoadError, err)
	}

	for _, f := range r.File {
		if f.FileInfo().IsDir() || !isROMFile(f.Name) {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, "", curated.Errorf(LoadError, err)
		}
		defer rc.Close()

		d, err := limitedRead(rc)
		if err != nil {
			return nil, "", err
		}
		return d, filepath.Base(f.Name), nil
	}

	return nil, "", curated.Errorf(NoROMFile)
}

// extractFromRAR extracts the first ROM file from a rar archive
func extractFromRAR(data []byte) ([]byte, string, error) {
	r, err := rardecode.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, "", curated.Errorf(LoadError, err)
	}

	for {
		hdr, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, "", curated.Errorf(LoadError, err)
		}

		if hdr.IsDir || !isROMFile(hdr.Name) {
			continue
		}

		d, err := limitedRead(r)
		if err != nil {
			return nil, "", err
		}
		return d, filepath.Base(hdr.Name), nil
	}

	return nil, "", curated.Errorf(NoROMFile)
}

// extractFromGzip decompresses a gzip file. the decompressed content is the
// ROM image
func extractFromGzip(data []byte, name string) ([]byte, string, error) {
	gr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, "", curated.Errorf(LoadError, err)
	}
	defer gr.Close()

	d, err := limitedRead(gr)
	if err != nil {
		return nil, "", err
	}

	if gr.Name != "" {
		name = gr.Name
	} else if strings.EqualFold(filepath.Ext(name), ".gz") {
		name = name[:len(name)-3]
	}

	return d, filepath.Base(name), nil
}
