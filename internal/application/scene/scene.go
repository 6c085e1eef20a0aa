// Package scene defines the Scene interface for UI screens.
//
// Each screen (menu, settings, modal flows) implements Scene to handle its
// own input and rendering.
package scene

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrQuit is returned from Update to end the program normally
var ErrQuit = errors.New("quit")

// Scene represents a UI screen.
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by one frame of dt seconds.
	// Returns the next scene if a transition is needed, nil to stay.
	// Returns ErrQuit to exit, any other error to abort.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene or shutting down.
	OnExit()
}
