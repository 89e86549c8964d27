package ramp

import "testing"

func collect(s Stepped, down bool) []uint16 {
	var out []uint16
	f := func(v uint16) { out = append(out, v) }
	if down {
		s.Down(f)
	} else {
		s.Up(f)
	}
	return out
}

func TestCountAndLast(t *testing.T) {
	type C struct {
		s     Stepped
		count int
		last  uint16
	}
	for _, c := range []C{
		{Stepped{0, 25000, 100}, 251, 25000},
		{Stepped{0, 250, 100}, 3, 200},
		{Stepped{10, 10, 7}, 1, 10},
		{Stepped{0, 5, 10}, 1, 0},
		{Stepped{0, 0xffff, 1}, 65536, 0xffff},
		{Stepped{0xff00, 0xffff, 0x80}, 2, 0xff80},
		{Stepped{5, 4, 1}, 0, 5},
		{Stepped{0, 100, 0}, 0, 0},
	} {
		if got := c.s.Count(); got != c.count {
			t.Fatalf("%+v Count = %d, want %d", c.s, got, c.count)
		}
		if got := c.s.Last(); got != c.last {
			t.Fatalf("%+v Last = %d, want %d", c.s, got, c.last)
		}
	}
}

func TestUpIsRegularAndBounded(t *testing.T) {
	s := Stepped{Lo: 3, Hi: 1000, Step: 7}
	up := collect(s, false)
	if len(up) != s.Count() {
		t.Fatalf("len = %d, want %d", len(up), s.Count())
	}
	if up[0] != s.Lo {
		t.Fatalf("first = %d, want %d", up[0], s.Lo)
	}
	for i := 1; i < len(up); i++ {
		if up[i]-up[i-1] != s.Step {
			t.Fatalf("step at %d: %d -> %d", i, up[i-1], up[i])
		}
	}
	if last := up[len(up)-1]; last > s.Hi || s.Hi-last >= s.Step {
		t.Fatalf("last = %d, not the largest value <= %d", last, s.Hi)
	}
}

func TestDownIsReverseOfUp(t *testing.T) {
	s := Stepped{Lo: 0, Hi: 0xffff, Step: 0x1000}
	up, down := collect(s, false), collect(s, true)
	if len(up) != len(down) {
		t.Fatalf("len up=%d down=%d", len(up), len(down))
	}
	for i := range up {
		if up[i] != down[len(down)-1-i] {
			t.Fatalf("mismatch at %d: up=%d down=%d", i, up[i], down[len(down)-1-i])
		}
	}
}

func TestInvalidVisitsNothing(t *testing.T) {
	if got := collect(Stepped{Lo: 9, Hi: 1, Step: 1}, false); len(got) != 0 {
		t.Fatalf("inverted bounds visited %v", got)
	}
	if got := collect(Stepped{Lo: 0, Hi: 1, Step: 0}, true); len(got) != 0 {
		t.Fatalf("zero step visited %v", got)
	}
}
