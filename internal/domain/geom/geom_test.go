package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2_AngleTo(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec2
		want float64
	}{
		{"same direction", V(1, 0), V(5, 0), 0},
		{"perpendicular", V(1, 0), V(0, 3), 90},
		{"opposite", V(1, 0), V(-2, 0), 180},
		{"diagonal", V(1, 0), V(1, 1), 45},
		{"zero vector", V(1, 0), V(0, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.a.AngleTo(tt.b), 1e-9)
		})
	}
}

func TestVec2_IsFinite(t *testing.T) {
	assert.True(t, V(1, 2).IsFinite())
	assert.False(t, V(math.Inf(1), 0).IsFinite())
	assert.False(t, V(0, math.NaN()).IsFinite())
}

func TestRect_Edges(t *testing.T) {
	r := R(10, 20, 30, 40)

	assert.Equal(t, 10.0, r.XMin())
	assert.Equal(t, 40.0, r.XMax())
	assert.Equal(t, 20.0, r.YMin())
	assert.Equal(t, 60.0, r.YMax())
	assert.Equal(t, V(25, 40), r.Center())
	assert.Equal(t, V(30, 40), r.Size())
}

func TestRect_IsEmpty(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"normal", R(0, 0, 10, 10), false},
		{"zero width", R(0, 0, 0, 10), true},
		{"zero height", R(0, 0, 10, 0), true},
		{"negative", R(0, 0, -1, 10), true},
		{"NaN width", R(0, 0, math.NaN(), 10), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.IsEmpty())
		})
	}
}

func TestRect_ContainsInclusive(t *testing.T) {
	r := R(0, 0, 10, 10)

	assert.True(t, r.Contains(V(5, 5)))
	assert.True(t, r.Contains(V(0, 0)), "min corner is inside")
	assert.True(t, r.Contains(V(10, 10)), "max corner is inside")
	assert.False(t, r.Contains(V(10.001, 5)))
}

func TestRect_FlipY(t *testing.T) {
	r := R(0, 0, 10, 10).FlipY()
	assert.Equal(t, R(0, -10, 10, 10), r)

	// Flipping twice is the identity
	orig := R(3, 7, 4, 2)
	assert.Equal(t, orig, orig.FlipY().FlipY())
}

func TestFromCorners(t *testing.T) {
	r := FromCorners(V(5, 1), V(-2, 4), V(3, -6))
	assert.Equal(t, R(-2, -6, 7, 10), r)

	assert.Equal(t, Rect{}, FromCorners())
}

func TestFrame_NilIsIdentity(t *testing.T) {
	var f *Frame
	p := V(3, 4)

	assert.Equal(t, p, f.LocalToWorld(p))
	assert.Equal(t, p, f.WorldToLocal(p))
	assert.Equal(t, 0, f.Depth())
}

func TestNewFrame_UnitScale(t *testing.T) {
	f := NewFrame(V(10, 0), nil)
	assert.Equal(t, V(11, 1), f.LocalToWorld(V(1, 1)))
	assert.Equal(t, V(1, 1), f.WorldToLocal(V(11, 1)))
}

func TestFrame_ZeroScaleCollapses(t *testing.T) {
	f := &Frame{Position: V(10, 0)}

	// Zero value Scale is not promoted to unit scale
	assert.Equal(t, V(10, 0), f.LocalToWorld(V(1, 1)))
	assert.Equal(t, V(10, 0), f.LocalToWorld(V(7, -3)))
}

func TestFrame_ParentChain(t *testing.T) {
	root := NewFrame(V(100, 50), nil)
	panel := &Frame{Position: V(10, 10), Scale: V(2, 2), Parent: root}

	world := panel.LocalToWorld(V(5, 5))
	assert.Equal(t, V(120, 70), world)
	assert.Equal(t, 2, panel.Depth())

	local := panel.WorldToLocal(world)
	assert.InDelta(t, 5.0, local.X, 1e-9)
	assert.InDelta(t, 5.0, local.Y, 1e-9)
}

func TestFrame_Rotation(t *testing.T) {
	f := &Frame{Rotation: math.Pi / 2, Scale: V(1, 1)}

	p := f.LocalToWorld(V(1, 0))
	assert.InDelta(t, 0.0, p.X, 1e-9)
	assert.InDelta(t, 1.0, p.Y, 1e-9)

	back := f.WorldToLocal(p)
	assert.InDelta(t, 1.0, back.X, 1e-9)
	assert.InDelta(t, 0.0, back.Y, 1e-9)
}

func TestFrame_ZeroScaleNotInvertible(t *testing.T) {
	tests := []struct {
		name  string
		scale Vec2
	}{
		{"zero x", V(0, 1)},
		{"zero y", V(1, 0)},
		{"zero both", V(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &Frame{Scale: tt.scale}
			assert.False(t, f.WorldToLocal(V(1, 1)).IsFinite())
		})
	}
}

func TestFrame_IsInvertible(t *testing.T) {
	root := NewFrame(V(0, 0), nil)
	collapsed := &Frame{Scale: V(0, 0), Parent: root}

	tests := []struct {
		name  string
		frame *Frame
		want  bool
	}{
		{"nil frame", nil, true},
		{"unit frame", root, true},
		{"scaled child", &Frame{Scale: V(2, 0.5), Parent: root}, true},
		{"zero value frame", &Frame{}, false},
		{"zero x scale", &Frame{Scale: V(0, 1)}, false},
		{"collapsed parent", NewFrame(V(5, 5), collapsed), false},
		{"infinite position", &Frame{Position: V(math.Inf(1), 0), Scale: V(1, 1)}, false},
		{"nan rotation", &Frame{Rotation: math.NaN(), Scale: V(1, 1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.frame.IsInvertible())
		})
	}
}
