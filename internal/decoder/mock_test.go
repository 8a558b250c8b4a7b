package decoder

import "fmt"

// call is one recorded sink invocation.
type call struct {
	name string
	args string
}

// recorder is a Sink that records every call it receives.
type recorder struct {
	calls []call
}

var _ Sink = (*recorder)(nil)

func (r *recorder) record(name string, args ...any) error {
	r.calls = append(r.calls, call{name: name, args: fmt.Sprint(args...)})
	return nil
}

func (r *recorder) Cls() error              { return r.record("Cls") }
func (r *recorder) Ret() error              { return r.record("Ret") }
func (r *recorder) Sys(addr uint16) error   { return r.record("Sys", addr) }
func (r *recorder) Jp(addr uint16) error    { return r.record("Jp", addr) }
func (r *recorder) Call(addr uint16) error  { return r.record("Call", addr) }
func (r *recorder) SeByte(x, b uint8) error { return r.record("SeByte", x, b) }
func (r *recorder) SneByte(x, b uint8) error {
	return r.record("SneByte", x, b)
}
func (r *recorder) SeReg(x, y uint8) error   { return r.record("SeReg", x, y) }
func (r *recorder) LdByte(x, b uint8) error  { return r.record("LdByte", x, b) }
func (r *recorder) AddByte(x, b uint8) error { return r.record("AddByte", x, b) }
func (r *recorder) LdReg(x, y uint8) error   { return r.record("LdReg", x, y) }
func (r *recorder) Or(x, y uint8) error      { return r.record("Or", x, y) }
func (r *recorder) And(x, y uint8) error     { return r.record("And", x, y) }
func (r *recorder) Xor(x, y uint8) error     { return r.record("Xor", x, y) }
func (r *recorder) AddReg(x, y uint8) error  { return r.record("AddReg", x, y) }
func (r *recorder) Sub(x, y uint8) error     { return r.record("Sub", x, y) }
func (r *recorder) Shr(x, y uint8) error     { return r.record("Shr", x, y) }
func (r *recorder) Subn(x, y uint8) error    { return r.record("Subn", x, y) }
func (r *recorder) Shl(x, y uint8) error     { return r.record("Shl", x, y) }
func (r *recorder) SneReg(x, y uint8) error  { return r.record("SneReg", x, y) }
func (r *recorder) LdI(addr uint16) error    { return r.record("LdI", addr) }
func (r *recorder) JpV0(addr uint16) error   { return r.record("JpV0", addr) }
func (r *recorder) Rnd(x, b uint8) error     { return r.record("Rnd", x, b) }
func (r *recorder) Drw(x, y, n uint8) error {
	return r.record("Drw", x, y, n)
}
func (r *recorder) Skp(x uint8) error         { return r.record("Skp", x) }
func (r *recorder) Sknp(x uint8) error        { return r.record("Sknp", x) }
func (r *recorder) LdVxDT(x uint8) error      { return r.record("LdVxDT", x) }
func (r *recorder) LdVxK(x uint8) error       { return r.record("LdVxK", x) }
func (r *recorder) LdDTVx(x uint8) error      { return r.record("LdDTVx", x) }
func (r *recorder) LdSTVx(x uint8) error      { return r.record("LdSTVx", x) }
func (r *recorder) AddIVx(x uint8) error      { return r.record("AddIVx", x) }
func (r *recorder) LdFVx(x uint8) error       { return r.record("LdFVx", x) }
func (r *recorder) LdBVx(x uint8) error       { return r.record("LdBVx", x) }
func (r *recorder) LdIVx(x uint8) error       { return r.record("LdIVx", x) }
func (r *recorder) LdVxI(x uint8) error       { return r.record("LdVxI", x) }
func (r *recorder) Unknown(word uint16) error { return r.record("Unknown", word) }
