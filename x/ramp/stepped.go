package ramp

// Stepped is the integer sequence Lo, Lo+Step, Lo+2*Step, ... up to and not
// exceeding Hi. The last value may fall short of Hi by up to Step-1; it is
// never clamped onto Hi.
//
// All arithmetic is done in 32 bits so a Hi close to 0xffff cannot wrap.
type Stepped struct {
	Lo, Hi, Step uint16
}

// Valid reports Step > 0 && Lo <= Hi.
func (s Stepped) Valid() bool { return s.Step > 0 && s.Lo <= s.Hi }

// Count returns the number of values in the sequence (0 when invalid).
func (s Stepped) Count() int {
	if !s.Valid() {
		return 0
	}
	return int((uint32(s.Hi)-uint32(s.Lo))/uint32(s.Step)) + 1
}

// At returns the i-th value, 0 <= i < Count().
func (s Stepped) At(i int) uint16 {
	return uint16(uint32(s.Lo) + uint32(i)*uint32(s.Step))
}

// Last returns the highest visited value (Lo when invalid).
func (s Stepped) Last() uint16 {
	n := s.Count()
	if n == 0 {
		return s.Lo
	}
	return s.At(n - 1)
}

// Up calls set for every value in ascending order.
func (s Stepped) Up(set Step) {
	n := s.Count()
	for i := 0; i < n; i++ {
		set(s.At(i))
	}
}

// Down calls set for every value in descending order; the exact reverse of Up.
func (s Stepped) Down(set Step) {
	for i := s.Count() - 1; i >= 0; i-- {
		set(s.At(i))
	}
}

// Step receives one value of the sequence.
type Step func(level uint16)
