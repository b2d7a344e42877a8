package menu

// Key codes with a navigation effect. Every other code is forwarded to
// OnKeyDown unchanged.
const (
	KeyUp   = 38
	KeyDown = 40
)

// Key codes the tui adapter reports without navigation effect.
const (
	KeyTab      = 9
	KeyEnter    = 13
	KeyEscape   = 27
	KeyPageUp   = 33
	KeyPageDown = 34
	KeyEnd      = 35
	KeyHome     = 36
)

// Msg is an input event consumed by Update.
type Msg interface {
	menuMsg()
}

// KeyDownMsg reports a key press by numeric key code.
type KeyDownMsg struct {
	Code int
}

// TooLowMsg reports navigation below the last visible item.
type TooLowMsg struct{}

// TooHighMsg reports navigation above the first visible item.
type TooHighMsg struct{}

// MouseEnterMsg reports the pointer entering an item.
type MouseEnterMsg[Item comparable] struct {
	Item Item
}

// MouseLeaveMsg reports the pointer leaving an item.
type MouseLeaveMsg[Item comparable] struct {
	Item Item
}

// MouseClickMsg reports a click on an item.
type MouseClickMsg[Item comparable] struct {
	Item Item
}

// NoOpMsg changes nothing and produces no notification.
type NoOpMsg struct{}

func (KeyDownMsg) menuMsg() {}
func (TooLowMsg) menuMsg() {}
func (TooHighMsg) menuMsg() {}
func (MouseEnterMsg[Item]) menuMsg() {}
func (MouseLeaveMsg[Item]) menuMsg() {}
func (MouseClickMsg[Item]) menuMsg() {}
func (NoOpMsg) menuMsg() {}
