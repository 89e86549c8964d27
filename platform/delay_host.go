//go:build !(rp2040 || rp2350)

package platform

import (
	"github.com/jonboulle/clockwork"

	"fadecode-go/x/timex"
)

// clockDelay blocks on a clockwork clock so tests can substitute a fake one.
type clockDelay struct {
	clk clockwork.Clock
}

func newClockDelay(clk clockwork.Clock) *clockDelay { return &clockDelay{clk: clk} }

func (d *clockDelay) DelayUs(us uint32) { d.clk.Sleep(timex.Us(us)) }
func (d *clockDelay) DelayMs(ms uint32) { d.clk.Sleep(timex.Ms(ms)) }
