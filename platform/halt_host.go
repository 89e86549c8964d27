//go:build !(rp2040 || rp2350)

package platform

import (
	"os"

	"fadecode-go/errcode"
	"fadecode-go/x/fmtx"
)

// Halt reports err and exits with status 1.
func Halt(err error) {
	fmtx.Fprintf(os.Stderr, "halt: %s: %v\n", errcode.Of(err), err)
	os.Exit(1)
}
