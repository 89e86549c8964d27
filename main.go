package main

import (
	"fadecode-go/fade"
	"fadecode-go/platform"
	"fadecode-go/x/fmtx"
)

func main() {
	sys, err := platform.Init()
	if err != nil {
		platform.Halt(err)
	}

	eng, err := fade.New(sys.LED, sys.Delay, fade.DefaultProfile)
	if err != nil {
		platform.Halt(err)
	}

	p := eng.Profile()
	fmtx.Printf("boot %s: fade %d..%d step %d, %d values per ramp, cycle %dms\r\n",
		sys.Board.Name, p.Low, p.Peak(), p.Step, p.Steps(), p.CycleTime().Milliseconds())

	eng.RunForever()
}
