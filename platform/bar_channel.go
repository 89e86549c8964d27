//go:build !(rp2040 || rp2350)

package platform

import (
	"io"
	"strings"

	"fadecode-go/errcode"
	"fadecode-go/x/fmtx"
	"fadecode-go/x/mathx"
)

// barChannel stands in for an LED on a terminal: it redraws a bar of the
// current duty whenever the bar's length changes.
type barChannel struct {
	w     io.Writer
	name  string
	top   uint16
	width uint16
	drawn int
}

func newBarChannel(w io.Writer, name string, top, width uint16) *barChannel {
	return &barChannel{w: w, name: name, top: top, width: width, drawn: -1}
}

func (c *barChannel) SetDuty(duty uint16) error {
	if duty > c.top {
		return errcode.OutOfRange
	}
	n := int(mathx.MapU16(duty, 0, c.top, 0, c.width))
	if n == c.drawn {
		return nil
	}
	c.drawn = n
	_, err := fmtx.Fprintf(c.w, "\r%s [%s%s] %5d",
		c.name, strings.Repeat("#", n), strings.Repeat(" ", int(c.width)-n), duty)
	return err
}

func (c *barChannel) MaxDuty() uint16 { return c.top }
