// Package menu provides the focus navigation demo scene.
package menu

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/focusnav/internal/application/focus"
	"github.com/younwookim/focusnav/internal/application/navigator"
	"github.com/younwookim/focusnav/internal/application/registry"
	"github.com/younwookim/focusnav/internal/application/replay"
	"github.com/younwookim/focusnav/internal/application/scene"
	"github.com/younwookim/focusnav/internal/application/state"
	"github.com/younwookim/focusnav/internal/application/system"
	"github.com/younwookim/focusnav/internal/domain/nav"
	"github.com/younwookim/focusnav/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{26, 26, 46, 255}
	colorElement    = color.RGBA{70, 70, 110, 255}
	colorDisabled   = color.RGBA{50, 50, 60, 255}
	colorNoTarget   = color.RGBA{60, 90, 70, 255}
	colorFocus      = color.RGBA{255, 215, 0, 255}
	colorFocusInner = color.RGBA{110, 110, 170, 255}
	colorModal      = color.RGBA{0, 0, 0, 160}
)

// Menu shows a layout and moves focus between its elements
type Menu struct {
	screen   *system.Screen
	registry *registry.Registry
	ctx      *navigator.Context
	focus    *focus.Manager
	input    *system.InputSystem
	state    state.UIState
	screenW  int
	screenH  int

	activated []nav.ElementID
	status    string

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

// Tuning converts the search config into navigator tuning
func Tuning(cfg config.SearchConfig) navigator.Tuning {
	ratio := navigator.DefaultAngleRatio
	if cfg.AngleRatio != nil {
		ratio = *cfg.AngleRatio
	}
	return navigator.Tuning{
		MaxAngle:        cfg.MaxAngle,
		AngleRatio:      ratio,
		LineLength:      cfg.LineLength,
		InitialCapacity: cfg.InitialCapacity,
	}
}

// New creates a menu scene for a layout.
// If recordPath is not empty, input will be recorded.
func New(cfg *config.NavigationConfig, layout *config.LayoutConfig, recordPath string) (*Menu, error) {
	if cfg == nil || layout == nil {
		return nil, fmt.Errorf("navigation config and layout are required")
	}

	reg := registry.New(len(layout.Elements))
	screen, err := system.BuildScreen(layout, reg)
	if err != nil {
		return nil, fmt.Errorf("failed to build layout %q: %w", layout.ID, err)
	}

	ctx := navigator.NewContext(reg, Tuning(cfg.Search))
	m := &Menu{
		screen:         screen,
		registry:       reg,
		ctx:            ctx,
		focus:          focus.NewManager(ctx, reg),
		input:          system.NewInputSystem(&cfg.Input),
		state:          state.StateBrowsing,
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		recordFilename: recordPath,
	}

	if screen.Initial == nil || !m.focus.SetFocus(screen.Initial) {
		m.focus.Reconcile()
	}

	if recordPath != "" {
		m.recorder = replay.NewRecorder(layout.ID)
		log.Printf("Recording enabled: %s", recordPath)
	}

	return m, nil
}

// Update reads input and applies it (implements scene.Scene)
func (m *Menu) Update(_ float64) (scene.Scene, error) {
	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && m.recorder != nil {
		m.saveRecording()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return nil, scene.ErrQuit
	}

	m.Apply(m.input.GetInput())
	return nil, nil // nil = stay on this scene
}

// Apply runs one frame of input. It does not touch ebiten, so replays and
// tests drive the scene through it.
func (m *Menu) Apply(input system.InputState) {
	if m.recorder != nil {
		m.recorder.RecordFrame(input)
	}

	for _, intent := range m.input.Intents(input) {
		switch in := intent.(type) {
		case system.ToggleModalIntent:
			m.toggleModal()
		case system.NavigateIntent:
			if m.focus.Move(in.Direction) {
				m.status = "moved " + in.Direction.String()
			}
		case system.PointIntent:
			if m.state.BlocksNavigation() {
				continue
			}
			if e := m.screen.ElementAt(in.X, in.Y); e != nil {
				m.focus.SetFocus(e)
			}
		case system.SubmitIntent:
			m.submit()
		}
	}

	m.focus.Reconcile()
}

func (m *Menu) toggleModal() {
	if m.state == state.StateModal {
		m.state = state.StateBrowsing
	} else {
		m.state = state.StateModal
	}
	m.ctx.SetBlocked(m.state.BlocksNavigation())
	m.status = m.state.String()
}

func (m *Menu) submit() {
	if m.state == state.StateModal {
		m.toggleModal()
		return
	}
	e, ok := m.focus.Focused().(*nav.Element)
	if !ok || e == nil {
		return
	}
	m.activated = append(m.activated, e.ID)
	m.status = "activated " + m.screen.Label(e.ID)
}

// Remove destroys an element and moves focus off it if needed
func (m *Menu) Remove(id nav.ElementID) bool {
	e := m.screen.Element(id)
	if e == nil || e.IsDestroyed() {
		return false
	}
	e.Destroy()
	m.registry.UnregisterNavigable(e)
	m.focus.Reconcile()
	return true
}

// Focused returns the focused element ID, or "" if nothing has focus
func (m *Menu) Focused() nav.ElementID {
	if e, ok := m.focus.Focused().(*nav.Element); ok && e != nil {
		return e.ID
	}
	return ""
}

// FocusTrail returns every element that received focus, in order
func (m *Menu) FocusTrail() []nav.ElementID {
	history := m.focus.History()
	trail := make([]nav.ElementID, 0, len(history))
	for _, n := range history {
		if e, ok := n.(*nav.Element); ok {
			trail = append(trail, e.ID)
		}
	}
	return trail
}

// Activated returns the IDs submitted so far
func (m *Menu) Activated() []nav.ElementID {
	return m.activated
}

// State returns the current UI state
func (m *Menu) State() state.UIState {
	return m.state
}

// saveRecording saves the current recording to file
func (m *Menu) saveRecording() {
	if m.recorder == nil {
		return
	}

	filename := m.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := m.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, m.recorder.FrameCount())
	}
}

// Draw renders the layout
func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	focused := m.focus.Focused()
	for _, e := range m.screen.Elements {
		if !e.IsActive() || !e.Frame().IsInvertible() {
			continue
		}
		r := e.WorldRect()

		fill := colorElement
		switch {
		case !e.IsInteractable():
			fill = colorDisabled
		case !e.Nav.AllowToThisObject:
			fill = colorNoTarget
		}

		if nav.Navigable(e) == focused {
			ebitenutil.DrawRect(screen, r.X-2, r.Y-2, r.W+4, r.H+4, colorFocus)
			fill = colorFocusInner
		}
		ebitenutil.DrawRect(screen, r.X, r.Y, r.W, r.H, fill)
		ebitenutil.DebugPrintAt(screen, m.screen.Label(e.ID), int(r.X)+4, int(r.Y)+4)
	}

	m.drawUI(screen)

	if m.state == state.StateModal {
		m.drawModalOverlay(screen)
	}
}

func (m *Menu) drawUI(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, m.status, 10, m.screenH-20)

	// Controls
	debugText := "Arrows/WASD: Move | Enter: Activate | Click: Focus | ESC: Modal | Q: Quit"
	ebitenutil.DebugPrint(screen, debugText)
}

func (m *Menu) drawModalOverlay(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(m.screenW), float64(m.screenH), colorModal)

	text := "MODAL\n\nNavigation blocked\nPress ESC or Enter to close"
	ebitenutil.DebugPrintAt(screen, text, m.screenW/2-80, m.screenH/2-30)
}

// OnEnter is called when entering this scene
func (m *Menu) OnEnter() {
	m.input.Reset()
}

// OnExit is called when leaving this scene
func (m *Menu) OnExit() {
	m.saveRecording()
}
