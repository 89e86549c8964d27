// Package platform performs the one-shot hardware bring-up and hands the
// fade engine its PWM channel and delay source.
package platform

import (
	"sync"

	"fadecode-go/errcode"
	"fadecode-go/fade"
	"fadecode-go/platform/boards"
)

// System is the result of bring-up.
type System struct {
	Board boards.Board
	LED   fade.Channel
	Delay fade.Delay
}

// Peripheral singletons can be taken once per boot.
var peripherals struct {
	mu    sync.Mutex
	taken bool
}

func take() error {
	peripherals.mu.Lock()
	defer peripherals.mu.Unlock()
	if peripherals.taken {
		return errcode.PeripheralTaken
	}
	peripherals.taken = true
	return nil
}

// Init brings up the board selected at build time. A second call fails with
// errcode.PeripheralTaken.
func Init() (*System, error) {
	if err := take(); err != nil {
		return nil, err
	}
	return bringup(boards.Selected())
}
