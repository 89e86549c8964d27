//go:build !(rp2040 || rp2350) && !board_rpi

package boards

// Simulated board: the LED is a bar on stdout.
var selected = Board{
	Name:      "host_sim",
	PinName:   "LED",
	PWMFreqHz: 1000,
	Top:       0xffff,
}
