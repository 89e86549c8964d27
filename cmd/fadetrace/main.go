// fadetrace runs the fade engine against an in-memory channel and logical
// clock and prints every duty write as CSV, for plotting a cycle on a host.
package main

import (
	"flag"
	"os"

	"fadecode-go/errcode"
	"fadecode-go/fade"
	"fadecode-go/x/fmtx"
)

func main() {
	cycles := flag.Int("cycles", 1, "number of fade cycles to run")
	low := flag.Uint("low", fade.Low, "lowest duty value")
	high := flag.Uint("high", fade.High, "highest duty value")
	step := flag.Uint("step", fade.Step, "duty increment per step")
	rejectEvery := flag.Int("reject-every", 0, "reject every Nth write (0 = never)")
	flag.Parse()

	if *low > 0xffff || *high > 0xffff || *step > 0xffff {
		fail(&errcode.E{C: errcode.InvalidParams, Op: "fadetrace", Msg: "bounds must fit in 16 bits"})
	}
	p := fade.DefaultProfile
	p.Low, p.High, p.Step = uint16(*low), uint16(*high), uint16(*step)

	if err := run(os.Stdout, p, *cycles, *rejectEvery); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmtx.Fprintf(os.Stderr, "fadetrace: %s: %v\n", errcode.Of(err), err)
	os.Exit(2)
}
