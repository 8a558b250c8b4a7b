// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/chip8vm/internal/frame"
	"github.com/retroenv/chip8vm/internal/options"
)

// Display backends.
const (
	DisplayWindow   = "window"
	DisplayTerminal = "terminal"
)

// ParseFlags parses command line flags and returns program and disassembler options
func ParseFlags() (options.Program, options.Disassembler, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, options.Disassembler{}, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, options.Disassembler{}, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, options.Disassembler{}, err
	}

	if len(args) > 0 {
		opts.Input = args[0]
	}

	disasmOptions := options.DisassemblerFromProgram(opts)
	if err := validateOptionCombinations(opts); err != nil {
		return opts, disasmOptions, err
	}

	return opts, disasmOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage and all flag defaults.
func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: chip8vm [options] <program file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after program file, please pass the program file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Mode = strings.ToLower(opts.Mode)
	opts.Keymap = strings.ToLower(opts.Keymap)
	opts.Display = strings.ToLower(opts.Display)

	if opts.Trace {
		opts.Debug = true
	}

	if err := validateChoice("mode", opts.Mode, options.ModeRun, options.ModeDisassemble); err != nil {
		return err
	}
	if err := validateChoice("display", opts.Display, DisplayWindow, DisplayTerminal); err != nil {
		return err
	}
	if _, err := frame.KeymapByName(opts.Keymap); err != nil {
		return err
	}

	switch {
	case opts.StepsPerFrame <= 0:
		return fmt.Errorf("invalid speed %d: must be positive", opts.StepsPerFrame)
	case opts.Scale <= 0:
		return fmt.Errorf("invalid scale %d: must be positive", opts.Scale)
	case opts.Frames < 0:
		return fmt.Errorf("invalid frame count %d: must not be negative", opts.Frames)
	}
	return nil
}

func validateChoice(name, value string, valid ...string) error {
	for _, choice := range valid {
		if value == choice {
			return nil
		}
	}
	return fmt.Errorf("unsupported %s: %s. Valid options: %s", name, value, strings.Join(valid, ", "))
}

// validateOptionCombinations checks for flags that only apply to other modes.
func validateOptionCombinations(opts options.Program) error {
	if opts.Mode == options.ModeDisassemble {
		return nil
	}
	if opts.Verify {
		return fmt.Errorf("-verify is only supported in %s mode", options.ModeDisassemble)
	}
	if opts.Output != "" {
		return fmt.Errorf("-o is only supported in %s mode", options.ModeDisassemble)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input program file")
	flags.StringVar(&opts.Output, "o", "", "name of the output .asm file in disasm mode, printed on console if no name given")
	flags.StringVar(&opts.Mode, "m", options.ModeRun, "mode: run the program or disassemble it (run/disasm)")
	flags.BoolVar(&opts.Verify, "verify", false, "verify the generated listing by reassembling it and check if it matches the input")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, implies -debug")
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed of the random number generator, 0 picks a random seed")
	flags.StringVar(&opts.Keymap, "keymap", "qwerty", "keyboard layout of the keypad (qwerty/azerty)")
	flags.StringVar(&opts.Display, "display", DisplayWindow, "display output (window/terminal)")
	flags.IntVar(&opts.StepsPerFrame, "speed", frame.DefaultStepsPerFrame, "instructions executed per 60 Hz frame")
	flags.IntVar(&opts.Frames, "frames", 0, "stop after the given number of frames, 0 runs until closed")
	flags.IntVar(&opts.Scale, "scale", 10, "window scale factor")
	flags.BoolVar(&opts.NoHexComments, "nohexcomments", false, "do not output opcode bytes as hex values in comments")
	flags.BoolVar(&opts.NoOffsets, "nooffsets", false, "do not output addresses in comments")
}
