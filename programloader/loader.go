// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package programloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// LoaderError is the pattern for all errors returned by the package.
const LoaderError = "programloader: %v"

// FileExtensions is the list of file extensions that are recognised as CHIP-8
// programs. Files with other extensions can still be loaded.
var FileExtensions = [...]string{".CH8", ".C8", ".BIN", ".ROM"}

// Loader is used to specify the program to load into the emulation.
type Loader struct {
	// filename of the program to load. can be a URL with the http or https
	// scheme
	Filename string

	// expected hash of the loaded program. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload the
	// data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
// Leading and trailing space is removed from the filename.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// ShortName returns a shortened version of the filename. The path and the
// file extension are removed.
func (pl Loader) ShortName() string {
	name := filepath.Base(pl.Filename)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// HasLoaded returns true if Load() has been successfully called.
func (pl Loader) HasLoaded() bool {
	return len(pl.Data) > 0
}

// IsRecognised returns true if the filename has one of the recognised file
// extensions.
func (pl Loader) IsRecognised() bool {
	ext := strings.ToUpper(filepath.Ext(pl.Filename))
	for _, e := range FileExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load the program data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
//
// The program must not be empty and must fit in the memory between the
// program origin and the end of memory.
func (pl *Loader) Load() error {
	if pl.HasLoaded() {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(pl.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	var data []byte

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(pl.Filename)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoaderError, fmt.Sprintf("http status (%s)", resp.Status))
		}

		// read one byte more than the maximum so that an oversized program
		// can be detected without reading all of it
		data, err = io.ReadAll(io.LimitReader(resp.Body, memory.MaxProgramSize+1))
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}

	case "file":
		fallthrough

	case "":
		fi, err := os.Stat(pl.Filename)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}
		if fi.IsDir() {
			return curated.Errorf(LoaderError, fmt.Sprintf("%s is a directory", pl.Filename))
		}
		if fi.Size() > memory.MaxProgramSize {
			return curated.Errorf(LoaderError, curated.Errorf(memory.ProgramTooLarge, fi.Size(), memory.MaxProgramSize))
		}

		data, err = os.ReadFile(pl.Filename)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}

	default:
		return curated.Errorf(LoaderError, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if len(data) == 0 {
		return curated.Errorf(LoaderError, "program is empty")
	}
	if len(data) > memory.MaxProgramSize {
		return curated.Errorf(LoaderError, curated.Errorf(memory.ProgramTooLarge, len(data), memory.MaxProgramSize))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if pl.Hash != "" && pl.Hash != hash {
		return curated.Errorf(LoaderError, "unexpected hash value")
	}

	pl.Hash = hash
	pl.Data = data

	return nil
}
