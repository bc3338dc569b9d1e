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

// Package version reports the version of the application. The version number
// is set at link time by the makefile. Without a version number the revision
// information recorded by the Go toolchain is used instead.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopher8"

// if number is empty then the project was probably not built using the
// makefile
var number string

var revision string

var version string

// Version returns the version string, the revision string and whether this is
// a numbered "release" version.
//
// The version string is "unreleased" if the project has been built from a vcs
// checkout without a version number. It is "local" if there is no version
// number and no vcs information, as happens with "go run .".
//
// The revision string is suffixed with "+dirty" if the source has been
// modified but not committed.
func Version() (string, string, bool) {
	return version, revision, version == number
}

// String returns the application name and version in a form suitable for
// window titles and the like.
func String() string {
	if version == number {
		return fmt.Sprintf("%s %s", ApplicationName, version)
	}
	return fmt.Sprintf("%s (%s)", ApplicationName, version)
}

func init() {
	info, _ := debug.ReadBuildInfo()
	version, revision = fromBuildInfo(info, number)
}

func fromBuildInfo(info *debug.BuildInfo, number string) (string, string) {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info != nil {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	rev := "no revision information"
	if vcsRevision != "" {
		rev = vcsRevision
		if vcsModified {
			rev = fmt.Sprintf("%s+dirty", rev)
		}
	}

	if number != "" {
		return number, rev
	}
	if vcs {
		return "unreleased", rev
	}
	return "local", rev
}
