//go:build !(rp2040 || rp2350) && board_rpi

package boards

// Raspberry Pi running Linux: LED on GPIO18 (PWM0).
var selected = Board{
	Name:      "rpi",
	PinName:   "GPIO18",
	PWMFreqHz: 1000,
	Top:       0xffff,
}
