package frame

import (
	"fmt"
	"slices"
	"strings"

	"github.com/retroenv/chip8vm/internal/machine"
)

// Keymap maps host key names to CHIP-8 keypad keys.
type Keymap map[string]byte

// keymaps contains the supported keyboard layouts.
//
// The qwerty layout maps the COSMAC VIP keypad
//
//	1 2 3 C
//	4 5 6 D
//	7 8 9 E
//	A 0 B F
//
// onto the left side of the keyboard. The azerty layout maps the keys in
// numeric order onto 1234, AZER, QSDF and WXCV.
var keymaps = map[string]Keymap{
	"qwerty": {
		"1": 0x1, "2": 0x2, "3": 0x3, "4": 0xC,
		"Q": 0x4, "W": 0x5, "E": 0x6, "R": 0xD,
		"A": 0x7, "S": 0x8, "D": 0x9, "F": 0xE,
		"Z": 0xA, "X": 0x0, "C": 0xB, "V": 0xF,
	},
	"azerty": {
		"1": 0x0, "2": 0x1, "3": 0x2, "4": 0x3,
		"A": 0x4, "Z": 0x5, "E": 0x6, "R": 0x7,
		"Q": 0x8, "S": 0x9, "D": 0xA, "F": 0xB,
		"W": 0xC, "X": 0xD, "C": 0xE, "V": 0xF,
	},
}

// KeymapByName returns the keyboard layout with the given name.
func KeymapByName(name string) (Keymap, error) {
	keymap, ok := keymaps[strings.ToLower(name)]
	if !ok {
		names := make([]string, 0, len(keymaps))
		for n := range keymaps {
			names = append(names, n)
		}
		slices.Sort(names)
		return nil, fmt.Errorf("unsupported keymap: %s. Valid options: %s", name, strings.Join(names, ", "))
	}
	return keymap, nil
}

// Names returns the host key names of the keymap in sorted order.
func (k Keymap) Names() []string {
	names := make([]string, 0, len(k))
	for name := range k {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Apply updates the key latch of the machine with the host key states
// returned by pressed.
func (k Keymap) Apply(state *machine.State, pressed func(name string) bool) {
	var keys [machine.KeyCount]bool
	for name, key := range k {
		if pressed(name) {
			keys[key] = true
		}
	}
	state.Keys = keys
}
