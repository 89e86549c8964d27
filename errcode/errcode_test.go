package errcode

import (
	"errors"
	"testing"
)

func TestCodesAreStableStrings(t *testing.T) {
	cases := map[string]Code{
		"ok":               OK,
		"invalid_params":   InvalidParams,
		"unsupported":      Unsupported,
		"out_of_range":     OutOfRange,
		"peripheral_taken": PeripheralTaken,
		"clock_init":       ClockInit,
		"unknown_pin":      UnknownPin,
		"error":            Error,
	}
	for want, c := range cases {
		if c.Error() != want {
			t.Fatalf("code %q mismatch: got %q", want, c.Error())
		}
	}
}

func TestOf(t *testing.T) {
	cause := errors.New("sysfs: write failed")
	for name, tc := range map[string]struct {
		err  error
		want Code
	}{
		"nil":     {nil, OK},
		"code":    {OutOfRange, OutOfRange},
		"wrapped": {Wrap(ClockInit, "host.Init", cause), ClockInit},
		"plain":   {cause, Error},
	} {
		if got := Of(tc.err); got != tc.want {
			t.Fatalf("%s: Of = %q, want %q", name, got, tc.want)
		}
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("boom")
	e := Wrap(UnknownPin, "gpioreg", cause)
	if !errors.Is(e, cause) {
		t.Fatal("cause not reachable through Unwrap")
	}
	if got, want := e.Error(), "gpioreg: unknown_pin: boom"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if got := (&E{C: InvalidParams}).Error(); got != "invalid_params" {
		t.Fatalf("bare E: got %q", got)
	}
}

func TestMapDriverErr(t *testing.T) {
	if MapDriverErr(nil) != OK {
		t.Fatal("nil should map to ok")
	}
	if MapDriverErr(errors.New("x")) != Error {
		t.Fatal("opaque driver error should map to error")
	}
	if MapDriverErr(OutOfRange) != OutOfRange {
		t.Fatal("coded error should keep its code")
	}
}
