package decoder

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		word uint16
		name string
		args string
	}{
		{0x00E0, "Cls", ""},
		{0x00EE, "Ret", ""},
		{0x0123, "Sys", "291"},
		{0x1ABC, "Jp", "2748"},
		{0x2345, "Call", "837"},
		{0x3A42, "SeByte", "10 66"},
		{0x4B17, "SneByte", "11 23"},
		{0x5120, "SeReg", "1 2"},
		{0x6CFF, "LdByte", "12 255"},
		{0x7D01, "AddByte", "13 1"},
		{0x8340, "LdReg", "3 4"},
		{0x8341, "Or", "3 4"},
		{0x8342, "And", "3 4"},
		{0x8343, "Xor", "3 4"},
		{0x8344, "AddReg", "3 4"},
		{0x8345, "Sub", "3 4"},
		{0x8346, "Shr", "3 4"},
		{0x8347, "Subn", "3 4"},
		{0x834E, "Shl", "3 4"},
		{0x9560, "SneReg", "5 6"},
		{0xA123, "LdI", "291"},
		{0xB456, "JpV0", "1110"},
		{0xC70F, "Rnd", "7 15"},
		{0xD895, "Drw", "8 9 5"},
		{0xE29E, "Skp", "2"},
		{0xE3A1, "Sknp", "3"},
		{0xF407, "LdVxDT", "4"},
		{0xF50A, "LdVxK", "5"},
		{0xF615, "LdDTVx", "6"},
		{0xF718, "LdSTVx", "7"},
		{0xF81E, "AddIVx", "8"},
		{0xF929, "LdFVx", "9"},
		{0xFA33, "LdBVx", "10"},
		{0xFB55, "LdIVx", "11"},
		{0xFC65, "LdVxI", "12"},
	}
	assert.Len(t, tests, 35)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{}
			assert.NoError(t, Decode(tt.word, r))
			assert.Len(t, r.calls, 1)
			assert.Equal(t, tt.name, r.calls[0].name)
			assert.Equal(t, tt.args, r.calls[0].args)
		})
	}
}

func TestDecode_Unknown(t *testing.T) {
	words := []uint16{
		0x5121, // SE Vx, Vy with non-zero low nibble
		0x912F,
		0x8008,
		0x800F,
		0xE000,
		0xE19F,
		0xF000,
		0xF0FF,
	}

	for _, word := range words {
		r := &recorder{}
		assert.NoError(t, Decode(word, r))
		assert.Len(t, r.calls, 1)
		assert.Equal(t, "Unknown", r.calls[0].name)
	}
}

// TestDecode_Total checks that every word results in exactly one sink call.
func TestDecode_Total(t *testing.T) {
	for w := 0; w <= 0xFFFF; w++ {
		r := &recorder{}
		_ = Decode(uint16(w), r)
		if len(r.calls) != 1 {
			t.Fatalf("word %04X produced %d calls", w, len(r.calls))
		}
	}
}

type failingSink struct {
	recorder
}

var errSink = errors.New("sink failure")

func (f *failingSink) Jp(uint16) error { return errSink }

func TestDecode_PassesError(t *testing.T) {
	err := Decode(0x1200, &failingSink{})
	assert.True(t, errors.Is(err, errSink))
}

func TestOperands(t *testing.T) {
	const word = 0xD7A3
	assert.Equal(t, uint8(0x7), X(word))
	assert.Equal(t, uint8(0xA), Y(word))
	assert.Equal(t, uint8(0x3), N(word))
	assert.Equal(t, uint8(0xA3), KK(word))
	assert.Equal(t, uint16(0x7A3), NNN(word))
}
