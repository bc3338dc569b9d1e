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

// Package resources contains functions to prepare paths for Gopher8
// resources.
//
// The base path for resources is the directory ".gopher8" in the user's home
// directory. However, if a directory called ".gopher8" exists in the current
// working directory then that is used instead. This is the "portable" mode
// and is useful when running Gopher8 from a removable drive or when testing.
//
// The JoinPath() function creates any missing directories in the path, but
// not the final file.
package resources
