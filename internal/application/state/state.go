package state

// UIState represents what the UI is currently doing with input
type UIState int

const (
	// StateBrowsing routes directional input to focus navigation
	StateBrowsing UIState = iota
	// StateModal shows an overlay; navigation queries are blocked
	StateModal
)

// String returns the string representation of the UI state
func (s UIState) String() string {
	switch s {
	case StateBrowsing:
		return "Browsing"
	case StateModal:
		return "Modal"
	default:
		return "Unknown"
	}
}

// BlocksNavigation reports whether navigation queries should be refused
func (s UIState) BlocksNavigation() bool {
	return s == StateModal
}
