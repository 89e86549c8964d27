package platform

import (
	"fadecode-go/errcode"
	"fadecode-go/x/mathx"
	"fadecode-go/x/timex"
)

// Slice is the bring-up view of one hardware PWM slice (counter plus two
// output channels sharing a frequency).
type Slice interface {
	SetPeriod(periodNs uint64) error
	SetPhaseCorrect(on bool)
	Enable(on bool)
	// OutputTo muxes pin to the slice and returns its channel index.
	OutputTo(pin int) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

// bindLED configures s for the LED pin: period, phase-correct counting,
// enable, then route the channel to the pin. The LED starts dark.
func bindLED(s Slice, pin int, freqHz uint32) (*sliceChannel, error) {
	if err := s.SetPeriod(timex.PeriodFromHz(freqHz)); err != nil {
		return nil, errcode.Wrap(errcode.MapDriverErr(err), "pwm.configure", err)
	}
	s.SetPhaseCorrect(true)
	s.Enable(true)
	ch, err := s.OutputTo(pin)
	if err != nil {
		return nil, errcode.Wrap(errcode.UnknownPin, "pwm.output", err)
	}
	c := &sliceChannel{s: s, ch: ch, top: uint16(mathx.Min(s.Top(), 0xffff))}
	_ = c.SetDuty(0)
	return c, nil
}

// sliceChannel writes raw compare values to one channel of a slice.
type sliceChannel struct {
	s   Slice
	ch  uint8
	top uint16
}

// SetDuty rejects values above the slice's wrap value.
func (c *sliceChannel) SetDuty(duty uint16) error {
	if duty > c.top {
		return errcode.OutOfRange
	}
	c.s.Set(c.ch, uint32(duty))
	return nil
}

func (c *sliceChannel) MaxDuty() uint16 { return c.top }
