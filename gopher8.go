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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/gui/sdl"
	"github.com/jetsetilly/gopher8/gui/terminal"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/memviz"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/programloader"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/version"
	"github.com/jetsetilly/gopher8/wavwriter"
)

// exit values
const (
	exitParseError = 10
	exitRunError   = 20
)

// the number of log entries printed after a CPU fault
const faultTail = 10

// SDL requires that window creation and event handling happen on the main
// thread
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	os.Exit(launch(os.Args[1:]))
}

// launch parses the arguments and runs the selected mode. returns the value
// to use with os.Exit()
func launch(args []string) int {
	// the log only contains entries from this launch
	logger.Clear()

	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("TERM", "DISASM", "PERFORMANCE", "VERSION")
	md.AddDefaultSubMode("RUN")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		fallthrough

	case "TERM":
		err = run(md)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		reportFault(os.Stdout, err)
		return exitRunError
	}

	return 0
}

// reportFault writes the most recent log entries if the error is a CPU fault.
// the log will include the instructions leading up to the fault if the trace
// preference is set
func reportFault(output io.Writer, err error) {
	if !curated.Has(err, cpu.Fault) {
		return
	}
	logger.Tail(output, faultTail)
}

// hardwareArgs are the flags common to every mode that creates an emulation
type hardwareArgs struct {
	cpu     *float64
	timer   *float64
	poll    *float64
	strict  *bool
	trace   *bool
	wrapsub *bool
	prefs   *string
	save    *bool
	log     *bool
}

func addHardwareArgs(md *modalflag.Modes) hardwareArgs {
	return hardwareArgs{
		cpu:     md.AddFloat64("cpu", preferences.DefaultCPUClock, "CPU clock rate in Hz"),
		timer:   md.AddFloat64("timer", preferences.DefaultTimerClock, "delay and sound timer rate in Hz"),
		poll:    md.AddFloat64("poll", preferences.DefaultPollClock, "input polling rate in Hz"),
		strict:  md.AddBool("strict", false, "unrecognised instructions are a fault"),
		trace:   md.AddBool("trace", false, "log every instruction as it is executed"),
		wrapsub: md.AddBool("wrapsub", false, "SUB and SUBN wrap and set VF to NOT borrow"),
		prefs:   md.AddString("prefs", "", "preferences override (key::value; key::value)"),
		save:    md.AddBool("saveprefs", false, "save preferences to disk before running"),
		log:     md.AddBool("log", false, "echo debugging log to stderr"),
	}
}

// preferences loads the preferences from disk, with the -prefs argument on
// the command line stack, and then applies any hardware flags that have been
// set explicitly
func (hw hardwareArgs) preferences(md *modalflag.Modes) (*preferences.Preferences, error) {
	// the terminal GUI draws to the same terminal as the log echo so the log
	// is written after the terminal has been restored
	if *hw.log && md.Mode() != "TERM" {
		logger.SetEcho(logger.NewColorizer(os.Stderr), false)
	} else {
		logger.SetEcho(nil, false)
	}

	prefs.PushCommandLineStack(*hw.prefs)
	p, err := preferences.NewPreferences()
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "gopher8", "unused preference overrides: %s", unused)
	}
	if err != nil {
		return nil, err
	}

	var setErr error
	set := func(pref interface{ Set(prefs.Value) error }, v prefs.Value) {
		if setErr == nil {
			setErr = pref.Set(v)
		}
	}

	md.Visit(func(flag string) {
		switch flag {
		case "cpu":
			set(&p.CPUClock, *hw.cpu)
		case "timer":
			set(&p.TimerClock, *hw.timer)
		case "poll":
			set(&p.PollClock, *hw.poll)
		case "strict":
			set(&p.Strict, *hw.strict)
		case "trace":
			set(&p.Trace, *hw.trace)
		case "wrapsub":
			set(&p.WrappingSub, *hw.wrapsub)
		}
	})

	if setErr != nil {
		return nil, setErr
	}

	return p, nil
}

// savePreferences saves the preferences if the -saveprefs flag is set
func (hw hardwareArgs) savePreferences(p *preferences.Preferences) error {
	if !*hw.save {
		return nil
	}
	if err := p.Save(); err != nil {
		return err
	}
	logger.Logf(logger.Allow, "gopher8", "preferences saved")
	return nil
}

// loadProgram returns the loaded program named by the single remaining
// argument
func loadProgram(md *modalflag.Modes) (programloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return programloader.Loader{}, fmt.Errorf("CHIP-8 program required for %s mode", md)
	case 1:
		pl := programloader.NewLoader(md.GetArg(0))
		if err := pl.Load(); err != nil {
			return programloader.Loader{}, err
		}
		if !pl.IsRecognised() {
			logger.Logf(logger.Allow, "gopher8", "unrecognised file extension: %s", pl.Filename)
		}
		return pl, nil
	}
	return programloader.Loader{}, fmt.Errorf("too many arguments for %s mode", md)
}

// frontend is implemented by the SDL and terminal GUIs
type frontend interface {
	hardware.Renderer
	input.Source
	ContinueCheck() (govern.State, error)
	Destroy()
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	hw := addHardwareArgs(md)

	var scale *int
	if md.Mode() == "RUN" {
		scale = md.AddInt("scale", 10, "window scaling")
	}
	fg := md.AddString("fg", "", "foreground colour (RRGGBB)")
	bg := md.AddString("bg", "", "background colour (RRGGBB)")
	wav := md.AddString("wav", "", "record audio to wav file")
	mv := md.AddString("memviz", "", "write machine state as a dot graph on exit")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	hwPrefs, err := hw.preferences(md)
	if err != nil {
		return err
	}

	pl, err := loadProgram(md)
	if err != nil {
		return err
	}

	// colours on the command line replace the colours in the preferences
	pal := hwPrefs.GetPalette()
	if *fg != "" {
		pal.Foreground, err = display.ParseColor(*fg)
		if err != nil {
			return err
		}
	}
	if *bg != "" {
		pal.Background, err = display.ParseColor(*bg)
		if err != nil {
			return err
		}
	}
	err = hwPrefs.Palette.Set(pal)
	if err != nil {
		return err
	}

	err = hw.savePreferences(hwPrefs)
	if err != nil {
		return err
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		statsview.Launch(os.Stdout)
	}

	ch, err := hardware.NewChip8(hwPrefs, nil)
	if err != nil {
		return err
	}

	err = ch.LoadProgram(pl.Data)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s - %s", version.ApplicationName, pl.ShortName())

	var gui frontend

	switch md.Mode() {
	case "RUN":
		scr, err := sdl.NewSDL(*scale, pal, title)
		if err != nil {
			return err
		}
		gui = scr

		aud, err := sdl.NewAudio()
		if err != nil {
			scr.Destroy()
			return err
		}
		ch.AddAudioMixer(aud)

	case "TERM":
		gui, err = terminal.NewTerminal(os.Stdin, os.Stdout, pal, title)
		if err != nil {
			return err
		}
	}
	defer func() {
		gui.Destroy()
		if *hw.log && md.Mode() == "TERM" {
			logger.Write(os.Stderr)
		}
	}()

	// add wavwriter mixer if wav argument has been specified
	if *wav != "" {
		aw, err := wavwriter.New(*wav)
		if err != nil {
			return err
		}
		ch.AddAudioMixer(aw)
	}

	ch.AddRenderer(gui)
	ch.SetInputSource(gui)

	err = gui.UpdateDisplay(ch.Display)
	if err != nil {
		return err
	}

	// ctrl-c ends the emulation gracefully so that the audio mixers are
	// finalised
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	runErr := ch.Run(func() (govern.State, error) {
		select {
		case <-intChan:
			return govern.Ending, nil
		default:
		}
		return gui.ContinueCheck()
	})

	err = ch.EndMixing()
	if runErr == nil {
		runErr = err
	}

	if *mv != "" {
		err = memviz.WriteFile(*mv, ch)
		if runErr == nil {
			runErr = err
		}
	}

	return runErr
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	summary := md.AddBool("summary", false, "print summary of instructions instead of the listing")
	grep := md.AddString("grep", "", "only print lines that match the regular expression")
	caseSensitive := md.AddBool("case", false, "regular expression is case sensitive")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pl, err := loadProgram(md)
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromProgram(pl.Data)
	if err != nil {
		return err
	}

	if *summary {
		return dsm.Summary(os.Stdout)
	}

	if *grep != "" {
		return dsm.Grep(os.Stdout, *grep, *caseSensitive)
	}

	return dsm.Write(os.Stdout)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	hw := addHardwareArgs(md)
	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	profile := md.AddBool("profile", false, "produce cpu and memory profiling reports")
	normalise := md.AddBool("normalise", false, "run with default preferences and a fixed random seed")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("CHIP-8 program required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	hwPrefs, err := hw.preferences(md)
	if err != nil {
		return err
	}

	err = hw.savePreferences(hwPrefs)
	if err != nil {
		return err
	}

	_, err = performance.Check(os.Stdout, *profile, *normalise, hwPrefs, programloader.NewLoader(md.GetArg(0)), *duration)
	return err
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	fmt.Println(version.String())
	if *revision {
		_, r, _ := version.Version()
		fmt.Println(r)
	}

	return nil
}
