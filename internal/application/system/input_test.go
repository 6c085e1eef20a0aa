package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/focusnav/internal/domain/nav"
	"github.com/younwookim/focusnav/internal/infrastructure/config"
)

func createTestInputConfig() *config.InputConfig {
	return &config.InputConfig{
		RepeatDelay:    4,
		RepeatInterval: 2,
		StickDeadZone:  50,
	}
}

func navigateDirections(intents []Intent) []nav.Direction {
	var dirs []nav.Direction
	for _, in := range intents {
		if n, ok := in.(NavigateIntent); ok {
			dirs = append(dirs, n.Direction)
		}
	}
	return dirs
}

func TestNewInputSystem(t *testing.T) {
	t.Run("keeps config values", func(t *testing.T) {
		cfg := createTestInputConfig()
		sys := NewInputSystem(cfg)

		require.NotNil(t, sys)
		assert.Equal(t, *cfg, sys.config)
		assert.Equal(t, nav.DirNone, sys.held)
	})

	t.Run("nil config uses defaults", func(t *testing.T) {
		sys := NewInputSystem(nil)

		assert.Equal(t, defaultRepeatDelay, sys.config.RepeatDelay)
		assert.Equal(t, defaultRepeatInterval, sys.config.RepeatInterval)
		assert.Equal(t, defaultStickDeadZone, sys.config.StickDeadZone)
	})

	t.Run("does not modify caller config", func(t *testing.T) {
		cfg := &config.InputConfig{}
		NewInputSystem(cfg)

		assert.Equal(t, 0, cfg.RepeatDelay)
	})
}

func TestInputSystem_Intents(t *testing.T) {
	t.Run("press emits one navigate intent", func(t *testing.T) {
		sys := NewInputSystem(createTestInputConfig())

		intents := sys.Intents(InputState{Right: true})

		require.Len(t, intents, 1)
		assert.Equal(t, NavigateIntent{Direction: nav.DirRight}, intents[0])
	})

	t.Run("no input emits nothing", func(t *testing.T) {
		sys := NewInputSystem(createTestInputConfig())

		assert.Empty(t, sys.Intents(InputState{}))
	})

	t.Run("held direction repeats after delay", func(t *testing.T) {
		sys := NewInputSystem(createTestInputConfig())

		var fired []int
		for frame := 0; frame < 10; frame++ {
			if len(sys.Intents(InputState{Down: true})) > 0 {
				fired = append(fired, frame)
			}
		}

		// press, then delay 4, then every 2 frames
		assert.Equal(t, []int{0, 4, 6, 8}, fired)
	})

	t.Run("release and press again fires immediately", func(t *testing.T) {
		sys := NewInputSystem(createTestInputConfig())

		assert.Len(t, sys.Intents(InputState{Up: true}), 1)
		assert.Empty(t, sys.Intents(InputState{Up: true}))
		assert.Empty(t, sys.Intents(InputState{}))
		assert.Len(t, sys.Intents(InputState{Up: true}), 1)
	})

	t.Run("changing direction fires immediately", func(t *testing.T) {
		sys := NewInputSystem(createTestInputConfig())

		sys.Intents(InputState{Left: true})
		intents := sys.Intents(InputState{Down: true})

		assert.Equal(t, []nav.Direction{nav.DirDown}, navigateDirections(intents))
	})

	t.Run("vertical wins over horizontal when both held", func(t *testing.T) {
		sys := NewInputSystem(createTestInputConfig())

		intents := sys.Intents(InputState{Up: true, Right: true})

		assert.Equal(t, []nav.Direction{nav.DirUp}, navigateDirections(intents))
	})

	t.Run("emits in deterministic order", func(t *testing.T) {
		sys := NewInputSystem(createTestInputConfig())

		intents := sys.Intents(InputState{
			Left:        true,
			Submit:      true,
			ToggleModal: true,
			MouseClick:  true,
			MouseX:      12,
			MouseY:      34,
		})

		require.Len(t, intents, 4)
		assert.Equal(t, NavigateIntent{Direction: nav.DirLeft}, intents[0])
		assert.Equal(t, PointIntent{X: 12, Y: 34}, intents[1])
		assert.Equal(t, SubmitIntent{}, intents[2])
		assert.Equal(t, ToggleModalIntent{}, intents[3])
	})

	t.Run("mouse position without click is ignored", func(t *testing.T) {
		sys := NewInputSystem(createTestInputConfig())

		assert.Empty(t, sys.Intents(InputState{MouseX: 5, MouseY: 5}))
	})

	t.Run("reset forgets held direction", func(t *testing.T) {
		sys := NewInputSystem(createTestInputConfig())

		sys.Intents(InputState{Right: true})
		sys.Reset()

		assert.Len(t, sys.Intents(InputState{Right: true}), 1)
	})
}

func TestInputSystem_StickDirection(t *testing.T) {
	sys := NewInputSystem(createTestInputConfig())

	tests := []struct {
		name string
		h, v float64
		want nav.Direction
	}{
		{"rest", 0, 0, nav.DirNone},
		{"inside dead zone", 0.2, 0.2, nav.DirNone},
		{"full right", 1, 0, nav.DirRight},
		{"full left", -1, 0, nav.DirLeft},
		{"stick up is negative", 0, -0.9, nav.DirUp},
		{"stick down", 0.1, 0.8, nav.DirDown},
		{"diagonal favors horizontal on tie", 0.6, -0.6, nav.DirRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sys.StickDirection(tt.h, tt.v))
		})
	}
}

func TestApplyDirection(t *testing.T) {
	var input InputState

	applyDirection(&input, nav.DirNone)
	assert.Equal(t, InputState{}, input)

	applyDirection(&input, nav.DirLeft)
	applyDirection(&input, nav.DirDown)
	assert.True(t, input.Left)
	assert.True(t, input.Down)
	assert.False(t, input.Up)
	assert.False(t, input.Right)
}
