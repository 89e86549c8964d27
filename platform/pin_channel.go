//go:build !(rp2040 || rp2350)

package platform

import (
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"

	"fadecode-go/errcode"
	"fadecode-go/x/mathx"
)

// pinChannel drives a periph hardware-PWM pin. Duty values in [0, top] are
// scaled onto gpio.Duty.
type pinChannel struct {
	pin  gpio.PinOut
	freq physic.Frequency
	top  uint16
}

func newPinChannel(pin gpio.PinOut, freqHz uint32, top uint16) *pinChannel {
	return &pinChannel{pin: pin, freq: physic.Frequency(freqHz) * physic.Hertz, top: top}
}

func (c *pinChannel) SetDuty(duty uint16) error {
	if duty > c.top {
		return errcode.OutOfRange
	}
	d := gpio.Duty(mathx.RoundDiv(uint64(duty)*uint64(gpio.DutyMax), uint64(c.top)))
	if err := c.pin.PWM(d, c.freq); err != nil {
		return errcode.Wrap(errcode.MapDriverErr(err), "gpio.PWM", err)
	}
	return nil
}

func (c *pinChannel) MaxDuty() uint16 { return c.top }
