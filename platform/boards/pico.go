//go:build (rp2040 || rp2350) && board_pico

package boards

// Raspberry Pi Pico: on-board LED on GP25.
var selected = Board{
	Name:      "pico",
	LEDPin:    25,
	PWMFreqHz: 1000,
	Console:   Console{TX: 0, RX: 1, Baud: 115200},
}
