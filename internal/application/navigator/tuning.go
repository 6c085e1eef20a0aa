package navigator

// Default search tuning
const (
	DefaultMaxAngle        = 80.0 // degrees
	DefaultAngleRatio      = 0.9
	DefaultLineLength      = 1e6
	DefaultInitialCapacity = 64
)

// Tuning holds the scoring constants for automatic search.
type Tuning struct {
	// MaxAngle is the widest deviation (degrees) from the search direction a
	// candidate center may have and still be scored.
	MaxAngle float64
	// AngleRatio weights the angular penalty in the center score. Zero
	// disables the penalty; a negative value selects DefaultAngleRatio.
	AngleRatio float64
	// LineLength is the length of the forward and backward search segments.
	LineLength float64
	// InitialCapacity sizes the scratch buffer.
	InitialCapacity int
}

// DefaultTuning returns the default tuning
func DefaultTuning() Tuning {
	return Tuning{
		MaxAngle:        DefaultMaxAngle,
		AngleRatio:      DefaultAngleRatio,
		LineLength:      DefaultLineLength,
		InitialCapacity: DefaultInitialCapacity,
	}
}

// withDefaults replaces zero or negative fields with defaults.
// AngleRatio keeps zero since it is a meaningful weight.
func (t Tuning) withDefaults() Tuning {
	if t.MaxAngle <= 0 {
		t.MaxAngle = DefaultMaxAngle
	}
	if t.AngleRatio < 0 {
		t.AngleRatio = DefaultAngleRatio
	}
	if t.LineLength <= 0 {
		t.LineLength = DefaultLineLength
	}
	if t.InitialCapacity <= 0 {
		t.InitialCapacity = DefaultInitialCapacity
	}
	return t
}

// CenterScore is the penalized center distance used to rank candidates
// that were not hit by the forward segment. angle must be <= MaxAngle.
//
// TODO: the (1 - ratio) term is added on top of the constant 1; confirm with
// UX whether 1 + ratio*angle/max was intended before changing it.
func (t Tuning) CenterScore(sqrDist, angle float64) float64 {
	return sqrDist * (1 + (1 - t.AngleRatio) + t.AngleRatio*angle/t.MaxAngle)
}
