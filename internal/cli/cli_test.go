package cli

import (
	"errors"
	"flag"
	"os"
	"reflect"
	"testing"

	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func parseArgs(t *testing.T, args ...string) (options.Program, options.Disassembler, error) {
	t.Helper()
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = append([]string{"prog"}, args...)
	return ParseFlags()
}

func TestParseFlags_Defaults(t *testing.T) {
	opts, disasmOpts, err := parseArgs(t, "test.ch8")
	assert.NoError(t, err)

	assert.Equal(t, "test.ch8", opts.Input)
	assert.Equal(t, options.ModeRun, opts.Mode)
	assert.Equal(t, "qwerty", opts.Keymap)
	assert.Equal(t, DisplayWindow, opts.Display)
	assert.Equal(t, 10, opts.StepsPerFrame)
	assert.Equal(t, 10, opts.Scale)
	assert.Equal(t, 0, opts.Frames)
	assert.Equal(t, uint16(0x200), disasmOpts.BaseAddress)
}

func TestParseFlags_DisasmOptions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Disassembler
	}{
		{
			name: "default flags",
			args: []string{"-m", "disasm", "test.ch8"},
			want: options.Disassembler{HexComments: true, OffsetComments: true},
		},
		{
			name: "nohexcomments flag",
			args: []string{"-m", "disasm", "-nohexcomments", "test.ch8"},
			want: options.Disassembler{OffsetComments: true},
		},
		{
			name: "nooffsets flag",
			args: []string{"-m", "disasm", "-nooffsets", "test.ch8"},
			want: options.Disassembler{HexComments: true},
		},
		{
			name: "all disasm flags",
			args: []string{"-m", "DISASM", "-nohexcomments", "-nooffsets", "test.ch8"},
			want: options.Disassembler{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, got, err := parseArgs(t, tt.args...)
			assert.NoError(t, err)
			assert.Equal(t, options.ModeDisassemble, opts.Mode)
			assert.Equal(t, tt.want.HexComments, got.HexComments)
			assert.Equal(t, tt.want.OffsetComments, got.OffsetComments)
		})
	}
}

func TestParseFlags_InputFlag(t *testing.T) {
	opts, _, err := parseArgs(t, "-i", "game.ch8", "-trace")
	assert.NoError(t, err)
	assert.Equal(t, "game.ch8", opts.Input)
	assert.True(t, opts.Debug)
}

func TestParseFlags_Usage(t *testing.T) {
	_, _, err := parseArgs(t)
	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr))
}

func TestParseFlags_ArgumentOrder(t *testing.T) {
	_, _, err := parseArgs(t, "test.ch8", "-q")
	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr))
	assert.ErrorContains(t, err, "-q")
}

func TestNormalizeOptions(t *testing.T) {
	valid := func() options.Program {
		return options.Program{
			Flags: options.Flags{
				Mode:    options.ModeRun,
				Keymap:  "qwerty",
				Display: DisplayWindow,
			},
			MachineFlags: options.MachineFlags{StepsPerFrame: 10, Scale: 10},
		}
	}

	tests := []struct {
		name        string
		modify      func(opts *options.Program)
		expectError string
	}{
		{
			name:   "valid",
			modify: func(_ *options.Program) {},
		},
		{
			name:   "upper case values",
			modify: func(opts *options.Program) { opts.Keymap = "AZERTY"; opts.Display = "Terminal" },
		},
		{
			name:        "unknown mode",
			modify:      func(opts *options.Program) { opts.Mode = "debug" },
			expectError: "unsupported mode",
		},
		{
			name:        "unknown display",
			modify:      func(opts *options.Program) { opts.Display = "sdl" },
			expectError: "unsupported display",
		},
		{
			name:        "unknown keymap",
			modify:      func(opts *options.Program) { opts.Keymap = "dvorak" },
			expectError: "unsupported keymap",
		},
		{
			name:        "zero speed",
			modify:      func(opts *options.Program) { opts.StepsPerFrame = 0 },
			expectError: "invalid speed",
		},
		{
			name:        "zero scale",
			modify:      func(opts *options.Program) { opts.Scale = 0 },
			expectError: "invalid scale",
		},
		{
			name:        "negative frames",
			modify:      func(opts *options.Program) { opts.Frames = -1 },
			expectError: "invalid frame count",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := valid()
			tt.modify(&opts)

			err := normalizeOptions(&opts)
			if tt.expectError == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.expectError)
			}
		})
	}
}

func TestValidateOptionCombinations(t *testing.T) {
	tests := []struct {
		name        string
		opts        options.Program
		expectError bool
	}{
		{
			name: "run",
			opts: options.Program{Flags: options.Flags{Mode: options.ModeRun}},
		},
		{
			name: "disasm with verify and output",
			opts: options.Program{
				Parameters: options.Parameters{Output: "out.asm"},
				Flags:      options.Flags{Mode: options.ModeDisassemble, Verify: true},
			},
		},
		{
			name:        "run with verify",
			opts:        options.Program{Flags: options.Flags{Mode: options.ModeRun, Verify: true}},
			expectError: true,
		},
		{
			name: "run with output",
			opts: options.Program{
				Parameters: options.Parameters{Output: "out.asm"},
				Flags:      options.Flags{Mode: options.ModeRun},
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateOptionCombinations(tt.opts)
			if tt.expectError {
				assert.True(t, err != nil)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReadOptionFlags_MatchesTags(t *testing.T) {
	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	typ := reflect.TypeOf(opts)
	for i := range typ.NumField() {
		group := typ.Field(i).Type
		for j := range group.NumField() {
			field := group.Field(j)
			name := field.Tag.Get("flag")
			f := flags.Lookup(name)
			if f == nil {
				t.Fatalf("flag -%s is not registered", name)
			}
			if def, ok := field.Tag.Lookup("default"); ok {
				assert.Equal(t, def, f.DefValue, "default of -"+name)
			}
		}
	}

	field, ok := reflect.TypeOf(options.Flags{}).FieldByName("Trace")
	assert.True(t, ok)
	assert.Equal(t, field.Tag.Get("usage"), flags.Lookup("trace").Usage)
}
