//go:build rp2040 || rp2350

package platform

import (
	"device/rp"
	"machine"
	"runtime/volatile"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/delay"

	"fadecode-go/errcode"
	"fadecode-go/platform/boards"
	"fadecode-go/x/fmtx"
	"fadecode-go/x/timex"
)

// Local interface to avoid depending on an unexported concrete type in machine.
type pwmGroup interface {
	Configure(cfg machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
	Enable(enable bool)
}

// rp2Slice adapts a machine PWM group to Slice. csr is the group's control
// register, which machine does not expose a phase-correct setter for.
type rp2Slice struct {
	g   pwmGroup
	csr *volatile.Register32
}

func (s *rp2Slice) SetPeriod(periodNs uint64) error {
	return s.g.Configure(machine.PWMConfig{Period: periodNs})
}

func (s *rp2Slice) SetPhaseCorrect(on bool) {
	if on {
		s.csr.SetBits(rp.PWM_CH0_CSR_PH_CORRECT_Msk)
	} else {
		s.csr.ClearBits(rp.PWM_CH0_CSR_PH_CORRECT_Msk)
	}
}

func (s *rp2Slice) Enable(on bool)                  { s.g.Enable(on) }
func (s *rp2Slice) OutputTo(pin int) (uint8, error) { return s.g.Channel(machine.Pin(pin)) }
func (s *rp2Slice) Top() uint32                     { return s.g.Top() }
func (s *rp2Slice) Set(channel uint8, value uint32) { s.g.Set(channel, value) }

// Select the slice driving a pin (slices 0..7 exist on both RP2040 and RP2350).
func sliceForPin(pin int) (*rp2Slice, error) {
	n, err := machine.PWMPeripheral(machine.Pin(pin))
	if err != nil {
		return nil, errcode.Wrap(errcode.UnknownPin, "pwm.slice", err)
	}
	switch n {
	case 0:
		return &rp2Slice{machine.PWM0, &machine.PWM0.CSR}, nil
	case 1:
		return &rp2Slice{machine.PWM1, &machine.PWM1.CSR}, nil
	case 2:
		return &rp2Slice{machine.PWM2, &machine.PWM2.CSR}, nil
	case 3:
		return &rp2Slice{machine.PWM3, &machine.PWM3.CSR}, nil
	case 4:
		return &rp2Slice{machine.PWM4, &machine.PWM4.CSR}, nil
	case 5:
		return &rp2Slice{machine.PWM5, &machine.PWM5.CSR}, nil
	case 6:
		return &rp2Slice{machine.PWM6, &machine.PWM6.CSR}, nil
	case 7:
		return &rp2Slice{machine.PWM7, &machine.PWM7.CSR}, nil
	}
	return nil, errcode.Unsupported
}

// busyDelay spins for microsecond waits, calibrated against the CPU clock,
// and sleeps for millisecond waits.
type busyDelay struct{}

func (busyDelay) DelayUs(us uint32) { delay.Sleep(timex.Us(us)) }
func (busyDelay) DelayMs(ms uint32) { time.Sleep(timex.Ms(ms)) }

func bringup(b boards.Board) (*System, error) {
	// The runtime configures XOSC and the PLLs before main; a zero
	// frequency means that did not happen and delays would be meaningless.
	if machine.CPUFrequency() == 0 {
		return nil, errcode.ClockInit
	}

	if b.Console.Baud != 0 {
		u := uartx.UART0
		if err := u.Configure(uartx.UARTConfig{
			BaudRate: b.Console.Baud,
			TX:       machine.Pin(b.Console.TX),
			RX:       machine.Pin(b.Console.RX),
		}); err == nil {
			fmtx.DefaultOutput = u
		}
	}

	s, err := sliceForPin(b.LEDPin)
	if err != nil {
		return nil, err
	}
	led, err := bindLED(s, b.LEDPin, b.PWMFreqHz)
	if err != nil {
		return nil, err
	}
	return &System{Board: b, LED: led, Delay: busyDelay{}}, nil
}

// Halt reports err on the console and parks the core forever.
func Halt(err error) {
	fmtx.Println("halt:", string(errcode.Of(err)), err)
	for {
		time.Sleep(time.Hour)
	}
}
