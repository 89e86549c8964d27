// Package fade drives a PWM channel through an endless brightness cycle:
// ramp up, ramp down, dwell, repeat.
package fade

import (
	"time"

	"fadecode-go/errcode"
	"fadecode-go/x/ramp"
)

// Compile-time fade constants.
const (
	Low         = 0     // lowest duty value visited
	High        = 25000 // upper bound; the ramp may stop short by up to Step-1
	Step        = 100   // duty increment per step
	StepDelayUs = 8     // wait after every duty write
	DwellMs     = 500   // pause after the down ramp
)

// Profile groups the ramp bounds and timings.
type Profile struct {
	Low, High, Step uint16
	StepDelayUs     uint32
	DwellMs         uint32
}

var DefaultProfile = Profile{
	Low:         Low,
	High:        High,
	Step:        Step,
	StepDelayUs: StepDelayUs,
	DwellMs:     DwellMs,
}

func (p Profile) seq() ramp.Stepped { return ramp.Stepped{Lo: p.Low, Hi: p.High, Step: p.Step} }

// Validate checks Step > 0 and Low <= High.
func (p Profile) Validate() error {
	if p.Step == 0 {
		return &errcode.E{C: errcode.InvalidParams, Op: "fade.Profile", Msg: "step must be > 0"}
	}
	if p.Low > p.High {
		return &errcode.E{C: errcode.InvalidParams, Op: "fade.Profile", Msg: "low above high"}
	}
	return nil
}

// Steps returns the number of duty values visited per ramp.
func (p Profile) Steps() int { return p.seq().Count() }

// Peak returns the highest duty value the up ramp reaches.
func (p Profile) Peak() uint16 { return p.seq().Last() }

// CycleTime is the nominal length of one cycle, ignoring the time spent in
// SetDuty itself.
func (p Profile) CycleTime() time.Duration {
	steps := time.Duration(2 * p.Steps())
	return steps*time.Duration(p.StepDelayUs)*time.Microsecond +
		time.Duration(p.DwellMs)*time.Millisecond
}
