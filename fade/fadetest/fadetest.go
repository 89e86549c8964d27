// Package fadetest provides an in-memory PWM channel and a logical clock for
// testing code built on package fade.
//
// Both write into a shared Trace so the interleaving of duty writes and
// delays can be checked exactly.
package fadetest

import (
	"runtime"

	"fadecode-go/errcode"
)

type OpKind uint8

const (
	OpSet     OpKind = iota // duty accepted by the channel
	OpReject                // duty rejected by the channel
	OpDelayUs               // inter-step delay
	OpDelayMs               // dwell
)

func (k OpKind) String() string {
	switch k {
	case OpSet:
		return "set"
	case OpReject:
		return "reject"
	case OpDelayUs:
		return "delay_us"
	case OpDelayMs:
		return "delay_ms"
	default:
		return "unknown"
	}
}

// Op is one recorded call.
type Op struct {
	Kind  OpKind
	Value uint32
}

// Trace is the ordered list of calls made against a Channel and a Clock.
type Trace struct {
	Ops []Op
}

func (t *Trace) add(k OpKind, v uint32) { t.Ops = append(t.Ops, Op{Kind: k, Value: v}) }

// Applied returns the accepted duty values in order.
func (t *Trace) Applied() []uint16 { return duties(t.Ops, true) }

// Attempted returns every duty value offered to the channel, accepted or not.
func (t *Trace) Attempted() []uint16 { return duties(t.Ops, false) }

// Count returns the number of ops of kind k.
func (t *Trace) Count(k OpKind) int {
	n := 0
	for _, op := range t.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Cycles splits the trace after every dwell. A trailing partial cycle is
// returned as the last element.
func (t *Trace) Cycles() [][]Op {
	var out [][]Op
	start := 0
	for i, op := range t.Ops {
		if op.Kind == OpDelayMs {
			out = append(out, t.Ops[start:i+1])
			start = i + 1
		}
	}
	if start < len(t.Ops) {
		out = append(out, t.Ops[start:])
	}
	return out
}

// Duties returns the duty values in ops; accepted only when onlyApplied.
func Duties(ops []Op, onlyApplied bool) []uint16 { return duties(ops, onlyApplied) }

func duties(ops []Op, onlyApplied bool) []uint16 {
	var out []uint16
	for _, op := range ops {
		switch op.Kind {
		case OpSet:
			out = append(out, uint16(op.Value))
		case OpReject:
			if !onlyApplied {
				out = append(out, uint16(op.Value))
			}
		}
	}
	return out
}

// Channel records duty writes instead of driving hardware.
type Channel struct {
	T *Trace

	// RejectEvery > 0 rejects every RejectEvery-th attempt.
	RejectEvery int
	// Max > 0 rejects values above it and is reported through MaxDuty.
	Max uint16

	attempts int
	last     uint16
}

func (c *Channel) SetDuty(duty uint16) error {
	c.attempts++
	if (c.RejectEvery > 0 && c.attempts%c.RejectEvery == 0) || (c.Max > 0 && duty > c.Max) {
		c.T.add(OpReject, uint32(duty))
		return errcode.OutOfRange
	}
	c.last = duty
	c.T.add(OpSet, uint32(duty))
	return nil
}

// MaxDuty reports Max, or 0xffff when unlimited.
func (c *Channel) MaxDuty() uint16 {
	if c.Max == 0 {
		return 0xffff
	}
	return c.Max
}

// Attempts returns the number of SetDuty calls so far.
func (c *Channel) Attempts() int { return c.attempts }

// Duty returns the last accepted value.
func (c *Channel) Duty() uint16 { return c.last }

// Clock is a logical clock: delays advance Now instead of blocking.
type Clock struct {
	T *Trace

	// DwellBudget > 0 ends the calling goroutine with runtime.Goexit once
	// that many dwells have elapsed. It lets a test get control back from a
	// loop that never returns; only use it off the test goroutine.
	DwellBudget int

	nowUs  uint64
	dwells int
}

func (c *Clock) DelayUs(us uint32) {
	c.nowUs += uint64(us)
	c.T.add(OpDelayUs, us)
}

func (c *Clock) DelayMs(ms uint32) {
	c.nowUs += uint64(ms) * 1000
	c.T.add(OpDelayMs, ms)
	c.dwells++
	if c.DwellBudget > 0 && c.dwells >= c.DwellBudget {
		runtime.Goexit()
	}
}

// NowUs returns the logical time in microseconds.
func (c *Clock) NowUs() uint64 { return c.nowUs }

// Dwells returns the number of DelayMs calls so far.
func (c *Clock) Dwells() int { return c.dwells }
