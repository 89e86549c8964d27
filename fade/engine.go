package fade

import (
	"fadecode-go/errcode"
	"fadecode-go/x/ramp"
)

// Channel is the one PWM output the engine writes to.
//
// SetDuty may reject a value (e.g. above the channel's own limit). The engine
// ignores the error and moves on to the next step.
type Channel interface {
	SetDuty(duty uint16) error
}

// Delay blocks the caller. Nothing else runs while it waits.
type Delay interface {
	DelayUs(us uint32)
	DelayMs(ms uint32)
}

// Ranged is implemented by channels that know their maximum duty value.
type Ranged interface {
	MaxDuty() uint16
}

// Phase of the fade cycle.
type Phase uint8

const (
	RampUp Phase = iota
	RampDown
	Dwell
)

func (p Phase) String() string {
	switch p {
	case RampUp:
		return "ramp_up"
	case RampDown:
		return "ramp_down"
	case Dwell:
		return "dwell"
	default:
		return "unknown"
	}
}

// Engine owns a Channel for its whole lifetime; nothing else may write duty
// to it once New has been called.
type Engine struct {
	ch    Channel
	delay Delay
	prof  Profile
	seq   ramp.Stepped
	apply ramp.Step
	phase Phase
}

// New checks the profile against the channel and returns an engine in the
// RampUp phase.
func New(ch Channel, d Delay, p Profile) (*Engine, error) {
	if ch == nil || d == nil {
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "fade.New", Msg: "nil channel or delay"}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if r, ok := ch.(Ranged); ok && r.MaxDuty() < p.High {
		return nil, &errcode.E{C: errcode.OutOfRange, Op: "fade.New", Msg: "channel resolution below high bound"}
	}
	e := &Engine{ch: ch, delay: d, prof: p, seq: p.seq(), phase: RampUp}
	e.apply = e.step
	return e, nil
}

// Phase reports the phase currently executing.
func (e *Engine) Phase() Phase { return e.phase }

// Profile returns the engine's ramp settings.
func (e *Engine) Profile() Profile { return e.prof }

// RunForever cycles until the device is reset. It never returns.
func (e *Engine) RunForever() {
	for {
		e.Cycle()
	}
}

// Cycle runs one RampUp, RampDown, Dwell sequence.
func (e *Engine) Cycle() {
	e.phase = RampUp
	e.seq.Up(e.apply)

	e.phase = RampDown
	e.seq.Down(e.apply)

	e.phase = Dwell
	e.delay.DelayMs(e.prof.DwellMs)
}

func (e *Engine) step(duty uint16) {
	// Best effort: a rejected value is superseded by the next step.
	_ = e.ch.SetDuty(duty)
	e.delay.DelayUs(e.prof.StepDelayUs)
}
