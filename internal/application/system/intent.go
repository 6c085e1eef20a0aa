package system

import "github.com/younwookim/focusnav/internal/domain/nav"

// Intent represents an action the user wants to perform on the UI
type Intent interface {
	isIntent()
}

// NavigateIntent moves focus in a direction
type NavigateIntent struct {
	Direction nav.Direction
}

func (NavigateIntent) isIntent() {}

// PointIntent focuses whatever is under a screen position
type PointIntent struct {
	X, Y int
}

func (PointIntent) isIntent() {}

// SubmitIntent activates the focused element
type SubmitIntent struct{}

func (SubmitIntent) isIntent() {}

// ToggleModalIntent opens or closes the modal overlay
type ToggleModalIntent struct{}

func (ToggleModalIntent) isIntent() {}
