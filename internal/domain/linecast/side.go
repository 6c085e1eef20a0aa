package linecast

// Side names the rectangle side(s) a segment may enter through.
// The corner values test the horizontal (top/bottom) side first and fall back
// to the vertical (left/right) side.
type Side int

const (
	SideNone Side = iota
	SideTop
	SideBottom
	SideLeft
	SideRight
	SideTopLeft
	SideTopRight
	SideBottomLeft
	SideBottomRight
)

// String returns the string representation of the side
func (s Side) String() string {
	switch s {
	case SideNone:
		return "None"
	case SideTop:
		return "Top"
	case SideBottom:
		return "Bottom"
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	case SideTopLeft:
		return "TopLeft"
	case SideTopRight:
		return "TopRight"
	case SideBottomLeft:
		return "BottomLeft"
	case SideBottomRight:
		return "BottomRight"
	default:
		return "Unknown"
	}
}

// Split returns the first and fallback sides. Single sides return SideNone
// as the fallback.
func (s Side) Split() (first, fallback Side) {
	switch s {
	case SideTopLeft:
		return SideTop, SideLeft
	case SideTopRight:
		return SideTop, SideRight
	case SideBottomLeft:
		return SideBottom, SideLeft
	case SideBottomRight:
		return SideBottom, SideRight
	default:
		return s, SideNone
	}
}

const (
	xx = SideNone
	tp = SideTop
	bt = SideBottom
	lf = SideLeft
	rt = SideRight
	tl = SideTopLeft
	tr = SideTopRight
	bl = SideBottomLeft
	br = SideBottomRight
)

// sideTable[start][end] lists the sides to test for a segment running from
// region start to region end. A start inside the rectangle, or a segment that
// stays within one outside row or column, cannot enter and maps to SideNone.
var sideTable = [RegionCount][RegionCount]Side{
	//             UL  UC  UR  ML  MC  MR  LL  LC  LR
	UpperLeft:    {xx, xx, xx, xx, tl, tl, xx, tl, tl},
	UpperCenter:  {xx, xx, xx, tp, tp, tp, tp, tp, tp},
	UpperRight:   {xx, xx, xx, tr, tr, xx, tr, tr, xx},
	MiddleLeft:   {xx, lf, lf, xx, lf, lf, xx, lf, lf},
	MiddleCenter: {xx, xx, xx, xx, xx, xx, xx, xx, xx},
	MiddleRight:  {rt, rt, xx, rt, rt, xx, rt, rt, xx},
	LowerLeft:    {xx, bl, bl, xx, bl, bl, xx, xx, xx},
	LowerCenter:  {bt, bt, bt, bt, bt, bt, xx, xx, xx},
	LowerRight:   {br, br, xx, br, br, xx, xx, xx, xx},
}

// SidesFor returns the side test order for a segment from start to end.
func SidesFor(start, end Region) Side {
	if start < 0 || start >= RegionCount || end < 0 || end >= RegionCount {
		return SideNone
	}
	return sideTable[start][end]
}
