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

package modalflag_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{"-strict", "1", "2"})
	strict := md.AddBool("strict", false, "strict mode")
	test.ExpectEquality(t, *strict, false)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, *strict, true)
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "1")
	test.ExpectEquality(t, md.GetArg(1), "2")
	test.ExpectEquality(t, md.GetArg(2), "")
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{"-wibble"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.Writer{}
	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectEquality(t, tw.String(), "No help available\n")
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.Writer{}
	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddInt("scale", 10, "window scaling")
	md.AddSubModes("RUN", "DISASM")
	md.AdditionalHelp("more information")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	s := tw.String()
	test.ExpectSuccess(t, strings.HasPrefix(s, "Usage:\n"))
	test.ExpectSuccess(t, strings.Contains(s, "-scale"))
	test.ExpectSuccess(t, strings.Contains(s, "window scaling"))
	test.ExpectSuccess(t, strings.Contains(s, "available sub-modes: RUN, DISASM\n"))
	test.ExpectSuccess(t, strings.Contains(s, "default: RUN\n"))
	test.ExpectSuccess(t, strings.HasSuffix(s, "more information\n"))
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{"roms/pong.ch8"})
	md.AddSubModes("RUN", "TERM", "DISASM")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")

	md.NewMode()
	scale := md.AddInt("scale", 10, "window scaling")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *scale, 10)
	test.ExpectEquality(t, md.GetArg(0), "roms/pong.ch8")
}

func TestAddDefaultSubMode(t *testing.T) {
	md := modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{"roms/pong.ch8"})
	md.AddSubModes("TERM", "DISASM")
	md.AddDefaultSubMode("run")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")

	// sub-modes added before the default can still be selected
	md = modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{"term", "roms/pong.ch8"})
	md.AddSubModes("TERM", "DISASM")
	md.AddDefaultSubMode("RUN")

	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "TERM")
}

func TestSubModes(t *testing.T) {
	md := modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{"-log", "disasm", "-bytes", "roms/pong.ch8"})
	log := md.AddBool("log", false, "echo log")
	md.AddSubModes("RUN", "TERM", "DISASM")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *log, true)
	test.ExpectEquality(t, md.Mode(), "DISASM")
	test.ExpectEquality(t, md.Path(), "DISASM")

	md.NewMode()
	bytes := md.AddBool("bytes", false, "show bytes")
	md.AddSubModes("LIST", "SUMMARY")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *bytes, true)

	// the file argument is not a sub-mode so the default is selected
	test.ExpectEquality(t, md.Mode(), "LIST")
	test.ExpectEquality(t, md.Path(), "DISASM/LIST")
	test.ExpectEquality(t, md.GetArg(0), "roms/pong.ch8")
}

func TestVisit(t *testing.T) {
	md := modalflag.Modes{Output: &test.Writer{}}
	md.NewArgs([]string{"-scale", "5", "-trace"})
	md.AddInt("scale", 10, "")
	md.AddBool("trace", false, "")
	md.AddBool("strict", false, "")

	_, err := md.Parse()
	test.DemandSuccess(t, err)

	var visited []string
	md.Visit(func(f string) {
		visited = append(visited, f)
	})
	test.ExpectEquality(t, strings.Join(visited, ","), "scale,trace")
}
