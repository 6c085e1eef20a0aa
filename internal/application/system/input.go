package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/focusnav/internal/domain/nav"
	"github.com/younwookim/focusnav/internal/infrastructure/config"
)

// Default repeat timing (frames)
const (
	defaultRepeatDelay    = 24
	defaultRepeatInterval = 6
	defaultStickDeadZone  = 50
)

// InputSystem turns raw input into navigation intents
type InputSystem struct {
	config config.InputConfig

	held       nav.Direction // Direction held last frame
	heldFrames int           // Frames the direction has been held
}

// NewInputSystem creates a new input system. Nil or zero config values use defaults.
func NewInputSystem(c *config.InputConfig) *InputSystem {
	var cfg config.InputConfig
	if c != nil {
		cfg = *c
	}
	if cfg.RepeatDelay <= 0 {
		cfg.RepeatDelay = defaultRepeatDelay
	}
	if cfg.RepeatInterval <= 0 {
		cfg.RepeatInterval = defaultRepeatInterval
	}
	if cfg.StickDeadZone <= 0 {
		cfg.StickDeadZone = defaultStickDeadZone
	}
	return &InputSystem{config: cfg, held: nav.DirNone}
}

// InputState holds the current input state
type InputState struct {
	Up          bool
	Down        bool
	Left        bool
	Right       bool
	Submit      bool // Just pressed
	ToggleModal bool // Just pressed
	MouseX      int
	MouseY      int
	MouseClick  bool
}

// GetInput reads the current keyboard, gamepad and mouse state
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	input := InputState{
		Up:          ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:        ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Left:        ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:       ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Submit:      inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		ToggleModal: inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		MouseX:      mx,
		MouseY:      my,
		MouseClick:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}

	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		input.Up = input.Up || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftTop)
		input.Down = input.Down || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftBottom)
		input.Left = input.Left || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		input.Right = input.Right || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
		input.Submit = input.Submit || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		input.ToggleModal = input.ToggleModal || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)

		h := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		applyDirection(&input, s.StickDirection(h, v))
	}

	return input
}

// StickDirection converts analog stick deflection (-1..1, Y down) to a direction
func (s *InputSystem) StickDirection(h, v float64) nav.Direction {
	return nav.DirectionFromDelta(int(h*100), int(v*100), s.config.StickDeadZone)
}

func applyDirection(input *InputState, dir nav.Direction) {
	switch dir {
	case nav.DirUp:
		input.Up = true
	case nav.DirDown:
		input.Down = true
	case nav.DirLeft:
		input.Left = true
	case nav.DirRight:
		input.Right = true
	}
}

// heldDirection returns the single held direction. When several are held the
// first of Up, Down, Left, Right wins.
func heldDirection(input InputState) nav.Direction {
	switch {
	case input.Up:
		return nav.DirUp
	case input.Down:
		return nav.DirDown
	case input.Left:
		return nav.DirLeft
	case input.Right:
		return nav.DirRight
	default:
		return nav.DirNone
	}
}

// Intents converts one frame of input into intents. A newly pressed direction
// fires at once; a held one repeats after RepeatDelay frames, every
// RepeatInterval frames.
func (s *InputSystem) Intents(input InputState) []Intent {
	var intents []Intent

	dir := heldDirection(input)
	if dir != s.held {
		s.held = dir
		s.heldFrames = 0
		if dir != nav.DirNone {
			intents = append(intents, NavigateIntent{Direction: dir})
		}
	} else if dir != nav.DirNone {
		s.heldFrames++
		if s.heldFrames >= s.config.RepeatDelay && (s.heldFrames-s.config.RepeatDelay)%s.config.RepeatInterval == 0 {
			intents = append(intents, NavigateIntent{Direction: dir})
		}
	}

	if input.MouseClick {
		intents = append(intents, PointIntent{X: input.MouseX, Y: input.MouseY})
	}
	if input.Submit {
		intents = append(intents, SubmitIntent{})
	}
	if input.ToggleModal {
		intents = append(intents, ToggleModalIntent{})
	}

	return intents
}

// Reset forgets any held direction
func (s *InputSystem) Reset() {
	s.held = nav.DirNone
	s.heldFrames = 0
}
