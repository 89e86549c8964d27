//go:build !(rp2040 || rp2350) && !board_rpi

package platform

import (
	"os"

	"github.com/jonboulle/clockwork"

	"fadecode-go/platform/boards"
)

const barWidth = 40

func bringup(b boards.Board) (*System, error) {
	led := newBarChannel(os.Stdout, b.PinName, b.Top, barWidth)
	_ = led.SetDuty(0)
	return &System{Board: b, LED: led, Delay: newClockDelay(clockwork.NewRealClock())}, nil
}
