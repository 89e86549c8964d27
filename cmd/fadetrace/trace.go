package main

import (
	"io"

	"fadecode-go/fade"
	"fadecode-go/fade/fadetest"
	"fadecode-go/x/fmtx"
)

// run writes one CSV row per duty write: cycle, phase, index within the
// phase, duty, accepted, logical time in microseconds.
func run(w io.Writer, p fade.Profile, cycles, rejectEvery int) error {
	tr := &fadetest.Trace{}
	ch := &fadetest.Channel{T: tr, RejectEvery: rejectEvery}
	clk := &fadetest.Clock{T: tr}
	eng, err := fade.New(ch, clk, p)
	if err != nil {
		return err
	}

	if _, err := fmtx.Fprintf(w, "cycle,phase,index,duty,accepted,t_us\n"); err != nil {
		return err
	}
	n := p.Steps()
	var now uint64
	for c := 0; c < cycles; c++ {
		tr.Ops = tr.Ops[:0]
		eng.Cycle()

		i := 0
		for _, op := range tr.Ops {
			switch op.Kind {
			case fadetest.OpDelayUs, fadetest.OpDelayMs:
				now += delayUs(op)
				continue
			}
			phase, idx := fade.RampUp, i
			if i >= n {
				phase, idx = fade.RampDown, i-n
			}
			if _, err := fmtx.Fprintf(w, "%d,%s,%d,%d,%t,%d\n",
				c, phase, idx, op.Value, op.Kind == fadetest.OpSet, now); err != nil {
				return err
			}
			i++
		}
	}
	return nil
}

func delayUs(op fadetest.Op) uint64 {
	if op.Kind == fadetest.OpDelayMs {
		return uint64(op.Value) * 1000
	}
	return uint64(op.Value)
}
