package boards

// Board describes the LED wiring and PWM operating point of one target.
// Exactly one descriptor is compiled in, chosen by build tags.
type Board struct {
	Name string

	// LEDPin is the GPIO number driving the LED (MCU targets).
	LEDPin int
	// PinName is the host driver's name for the LED pin (Linux targets).
	PinName string

	// PWMFreqHz is the requested carrier frequency. Phase-correct mode on
	// RP2 slices halves the effective rate.
	PWMFreqHz uint32
	// Top is the duty resolution hosts expose as [0, Top]. MCU targets
	// take it from the configured slice instead.
	Top uint16

	Console Console
}

// Console is the boot-log UART. Baud 0 means no UART console.
type Console struct {
	TX, RX int
	Baud   uint32
}

// Selected is the board this binary was built for.
func Selected() Board { return selected }
