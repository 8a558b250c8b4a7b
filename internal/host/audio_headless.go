//go:build headless

package host

// Beeper is silent in headless builds.
type Beeper struct {
	active bool
}

// NewBeeper returns a silent beeper.
func NewBeeper() (*Beeper, error) {
	return &Beeper{}, nil
}

// SetActive records the tone state.
func (b *Beeper) SetActive(active bool) {
	b.active = active
}

// Close does nothing.
func (b *Beeper) Close() error {
	return nil
}
