package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/focusnav/internal/domain/geom"
)

func TestDirection_String(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected string
	}{
		{DirRight, "Right"},
		{DirUp, "Up"},
		{DirLeft, "Left"},
		{DirDown, "Down"},
		{DirNone, "None"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.dir.String())
		})
	}
}

func TestDirection_Vector(t *testing.T) {
	assert.Equal(t, geom.V(-1, 0), DirLeft.Vector())
	assert.Equal(t, geom.V(1, 0), DirRight.Vector())
	assert.Equal(t, geom.V(0, 1), DirUp.Vector())
	assert.Equal(t, geom.V(0, -1), DirDown.Vector())
	assert.Equal(t, geom.Vec2{}, DirNone.Vector())
}

func TestDirection_Opposite(t *testing.T) {
	assert.Equal(t, DirLeft, DirRight.Opposite())
	assert.Equal(t, DirDown, DirUp.Opposite())
	assert.Equal(t, DirRight, DirLeft.Opposite())
	assert.Equal(t, DirUp, DirDown.Opposite())
	assert.Equal(t, DirNone, DirNone.Opposite())
}

func TestDirectionFromDelta(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
		want   Direction
	}{
		{"inside dead zone", 5, 5, DirNone},
		{"right", 20, 3, DirRight},
		{"left", -20, 3, DirLeft},
		{"up is negative y", 2, -20, DirUp},
		{"down", 2, 20, DirDown},
		{"tie prefers horizontal", 10, 10, DirRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DirectionFromDelta(tt.dx, tt.dy, 16))
		})
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		ok   bool
	}{
		{"", ModeAutomatic, true},
		{"automatic", ModeAutomatic, true},
		{"none", ModeNone, true},
		{"horizontal", ModeHorizontal, true},
		{"vertical", ModeVertical, true},
		{"explicit", ModeExplicit, true},
		{"diagonal", ModeNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseMode(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMode_Allows(t *testing.T) {
	assert.True(t, ModeAutomatic.Allows(DirUp))
	assert.False(t, ModeAutomatic.Allows(DirNone))
	assert.True(t, ModeHorizontal.Allows(DirLeft))
	assert.False(t, ModeHorizontal.Allows(DirUp))
	assert.True(t, ModeVertical.Allows(DirDown))
	assert.False(t, ModeVertical.Allows(DirRight))
	assert.False(t, ModeNone.Allows(DirRight))
}

func TestNavigation_Target(t *testing.T) {
	up := NewElement("up", geom.R(0, 0, 1, 1), nil, 0)
	n := Navigation{SelectOnUp: up}

	assert.Equal(t, Navigable(up), n.Target(DirUp))
	assert.Nil(t, n.Target(DirDown))
	assert.Nil(t, n.Target(DirNone))
}

func TestExplicitOverrides_ListNilSafe(t *testing.T) {
	var o *ExplicitOverrides
	assert.Nil(t, o.List(DirUp))
}

func TestElement_NilSafe(t *testing.T) {
	var e *Element

	assert.False(t, e.IsActive())
	assert.False(t, e.IsInteractable())
	assert.Equal(t, geom.Rect{}, e.Bounds())
	assert.Nil(t, e.Frame())
	assert.Equal(t, geom.Rect{}, e.WorldRect())
	assert.Equal(t, ParentID(0), e.ParentID())
	assert.Equal(t, Navigation{}, e.Navigation())
	assert.False(t, e.IsDestroyed())
	assert.False(t, IsAvailable(e))
}

func TestElement_Lifecycle(t *testing.T) {
	e := NewElement("play", geom.R(0, 0, 10, 10), nil, 1)
	assert.True(t, IsAvailable(e))

	e.SetHidden(true)
	assert.False(t, e.IsActive())
	e.SetHidden(false)
	assert.True(t, e.IsActive())

	e.Interactable = false
	assert.False(t, IsAvailable(e))
	e.Interactable = true

	e.Destroy()
	assert.True(t, e.IsDestroyed())
	assert.False(t, e.IsActive())
}

func TestElement_WorldRect(t *testing.T) {
	panel := &geom.Frame{Position: geom.V(100, 20), Scale: geom.V(2, 1)}
	e := NewElement("opt", geom.R(5, 5, 10, 10), panel, 1)

	assert.Equal(t, geom.R(110, 25, 20, 10), e.WorldRect())
}

func TestElement_WorldRectCollapsedPanel(t *testing.T) {
	panel := &geom.Frame{Position: geom.V(100, 20), Scale: geom.V(0, 0)}
	e := NewElement("opt", geom.R(5, 5, 10, 10), panel, 1)

	r := e.WorldRect()
	assert.True(t, r.IsEmpty())
	assert.Equal(t, geom.V(100, 20), r.Min())
}

// taggedWidget is a value-type widget; the slice field makes it non-comparable
type taggedWidget struct {
	*Element
	tags []string
}

func TestIsComparable(t *testing.T) {
	e := NewElement("a", geom.R(0, 0, 10, 10), nil, 1)
	var typedNil *Element

	tests := []struct {
		name      string
		n         Navigable
		available bool
		want      bool
	}{
		{"nil", nil, false, false},
		{"pointer", e, true, true},
		{"typed nil pointer", typedNil, false, true},
		{"struct with slice", taggedWidget{Element: e, tags: []string{"x"}}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsComparable(tt.n))
			assert.Equal(t, tt.available, IsAvailable(tt.n))
		})
	}
}
