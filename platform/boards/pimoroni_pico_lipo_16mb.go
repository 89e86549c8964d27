//go:build (rp2040 || rp2350) && !board_pico

package boards

// Pimoroni Pico LiPo 16MB: on-board LED on GP25, PWM slice 4 channel B.
var selected = Board{
	Name:      "pimoroni_pico_lipo_16mb",
	LEDPin:    25,
	PWMFreqHz: 1000,
	Console:   Console{TX: 0, RX: 1, Baud: 115200},
}
