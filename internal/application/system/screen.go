package system

import (
	"fmt"
	"math"

	"github.com/younwookim/focusnav/internal/application/registry"
	"github.com/younwookim/focusnav/internal/domain/geom"
	"github.com/younwookim/focusnav/internal/domain/nav"
	"github.com/younwookim/focusnav/internal/infrastructure/config"
)

// Screen is a built layout: elements in declaration order plus lookup tables
type Screen struct {
	ID       string
	Name     string
	Elements []*nav.Element
	Labels   map[nav.ElementID]string
	Initial  *nav.Element

	byID   map[nav.ElementID]*nav.Element
	panels map[string]*geom.Frame
}

// Element returns the element with the given ID, or nil
func (s *Screen) Element(id nav.ElementID) *nav.Element {
	return s.byID[id]
}

// Label returns the display label, falling back to the ID
func (s *Screen) Label(id nav.ElementID) string {
	if l, ok := s.Labels[id]; ok && l != "" {
		return l
	}
	return string(id)
}

// ElementAt returns the topmost active element under a screen position.
// Elements under a collapsed (zero-scale) panel are never hit.
// Later elements are drawn on top, so the search runs back to front.
func (s *Screen) ElementAt(x, y int) *nav.Element {
	p := geom.V(float64(x), float64(y))
	for i := len(s.Elements) - 1; i >= 0; i-- {
		e := s.Elements[i]
		if !e.IsActive() || !e.Frame().IsInvertible() {
			continue
		}
		if e.WorldRect().Contains(p) {
			return e
		}
	}
	return nil
}

// BuildScreen converts a LayoutConfig into elements and registers them
func BuildScreen(cfg *config.LayoutConfig, reg *registry.Registry) (*Screen, error) {
	if cfg == nil {
		return nil, fmt.Errorf("layout is nil")
	}

	screen := &Screen{
		ID:       cfg.ID,
		Name:     cfg.Name,
		Elements: make([]*nav.Element, 0, len(cfg.Elements)),
		Labels:   make(map[nav.ElementID]string, len(cfg.Elements)),
		byID:     make(map[nav.ElementID]*nav.Element, len(cfg.Elements)),
		panels:   make(map[string]*geom.Frame, len(cfg.Panels)),
	}

	// Panels must be declared after their parent
	parentIDs := make(map[string]nav.ParentID, len(cfg.Panels))
	for i, pc := range cfg.Panels {
		if pc.ID == "" {
			return nil, fmt.Errorf("panel %d has no id", i)
		}
		if _, dup := screen.panels[pc.ID]; dup {
			return nil, fmt.Errorf("duplicate panel id %q", pc.ID)
		}
		var parent *geom.Frame
		if pc.Parent != "" {
			p, ok := screen.panels[pc.Parent]
			if !ok {
				return nil, fmt.Errorf("panel %q: unknown parent panel %q", pc.ID, pc.Parent)
			}
			parent = p
		}
		frame := geom.NewFrame(geom.V(pc.Position.X, pc.Position.Y), parent)
		frame.Rotation = pc.Rotation * math.Pi / 180
		if pc.Scale != nil {
			frame.Scale = geom.V(pc.Scale.X, pc.Scale.Y)
		}
		screen.panels[pc.ID] = frame
		parentIDs[pc.ID] = nav.ParentID(i + 1) // 0 is the root
	}

	for i, ec := range cfg.Elements {
		if ec.ID == "" {
			return nil, fmt.Errorf("element %d has no id", i)
		}
		id := nav.ElementID(ec.ID)
		if _, dup := screen.byID[id]; dup {
			return nil, fmt.Errorf("duplicate element id %q", ec.ID)
		}

		var frame *geom.Frame
		var parent nav.ParentID
		if ec.Panel != "" {
			f, ok := screen.panels[ec.Panel]
			if !ok {
				return nil, fmt.Errorf("element %q: unknown panel %q", ec.ID, ec.Panel)
			}
			frame, parent = f, parentIDs[ec.Panel]
		}

		mode, ok := nav.ParseMode(ec.Mode)
		if !ok {
			return nil, fmt.Errorf("element %q: unknown mode %q", ec.ID, ec.Mode)
		}

		e := nav.NewElement(id, geom.R(ec.Rect.X, ec.Rect.Y, ec.Rect.W, ec.Rect.H), frame, parent)
		e.Nav.Mode = mode
		e.Nav.AllowToOtherParent = ec.AllowOtherParent
		if ec.Interactable != nil {
			e.Interactable = *ec.Interactable
		}
		if ec.AllowAsTarget != nil {
			e.Nav.AllowToThisObject = *ec.AllowAsTarget
		}

		screen.Elements = append(screen.Elements, e)
		screen.byID[id] = e
		screen.Labels[id] = ec.Label
	}

	// Second pass: targets may point forward
	for i, ec := range cfg.Elements {
		e := screen.Elements[i]
		if err := screen.resolveExplicit(e, ec); err != nil {
			return nil, err
		}
	}

	if cfg.InitialFocus != "" {
		screen.Initial = screen.byID[nav.ElementID(cfg.InitialFocus)]
		if screen.Initial == nil {
			return nil, fmt.Errorf("unknown initial focus %q", cfg.InitialFocus)
		}
	}

	if reg != nil {
		for _, e := range screen.Elements {
			reg.Register(e)
		}
	}

	return screen, nil
}

func (s *Screen) resolveExplicit(e *nav.Element, ec config.ElementConfig) error {
	lookup := func(ref string) (nav.Navigable, error) {
		if ref == "" {
			return nil, nil
		}
		t, ok := s.byID[nav.ElementID(ref)]
		if !ok {
			return nil, fmt.Errorf("element %q: unknown target %q", ec.ID, ref)
		}
		return t, nil
	}

	var err error
	if e.Nav.SelectOnUp, err = lookup(ec.Explicit.Up); err != nil {
		return err
	}
	if e.Nav.SelectOnDown, err = lookup(ec.Explicit.Down); err != nil {
		return err
	}
	if e.Nav.SelectOnLeft, err = lookup(ec.Explicit.Left); err != nil {
		return err
	}
	if e.Nav.SelectOnRight, err = lookup(ec.Explicit.Right); err != nil {
		return err
	}

	if ec.Overrides == nil {
		return nil
	}
	list := func(refs []string) ([]nav.Navigable, error) {
		out := make([]nav.Navigable, 0, len(refs))
		for _, ref := range refs {
			t, err := lookup(ref)
			if err != nil {
				return nil, err
			}
			if t != nil {
				out = append(out, t)
			}
		}
		return out, nil
	}

	o := &nav.ExplicitOverrides{
		AddNewSelections:   ec.Overrides.AddNewSelections,
		UseAutomaticIfNull: ec.Overrides.UseAutomaticIfNull,
	}
	if o.Up, err = list(ec.Overrides.Up); err != nil {
		return err
	}
	if o.Down, err = list(ec.Overrides.Down); err != nil {
		return err
	}
	if o.Left, err = list(ec.Overrides.Left); err != nil {
		return err
	}
	if o.Right, err = list(ec.Overrides.Right); err != nil {
		return err
	}
	e.Nav.Explicit = o
	return nil
}
