//go:build !(rp2040 || rp2350) && board_rpi

package platform

import (
	"github.com/jonboulle/clockwork"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"fadecode-go/errcode"
	"fadecode-go/platform/boards"
)

func bringup(b boards.Board) (*System, error) {
	if _, err := host.Init(); err != nil {
		return nil, errcode.Wrap(errcode.ClockInit, "host.Init", err)
	}
	p := gpioreg.ByName(b.PinName)
	if p == nil {
		return nil, &errcode.E{C: errcode.UnknownPin, Op: "gpioreg.ByName", Msg: b.PinName}
	}
	led := newPinChannel(p, b.PWMFreqHz, b.Top)
	// The first PWM call switches the pin to its PWM function.
	if err := led.SetDuty(0); err != nil {
		return nil, err
	}
	return &System{Board: b, LED: led, Delay: newClockDelay(clockwork.NewRealClock())}, nil
}
