package replay

// FormatVersion is written into every recording
const FormatVersion = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	U  bool `json:"u,omitempty"`  // Up
	D  bool `json:"d,omitempty"`  // Down
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	S  bool `json:"s,omitempty"`  // Submit
	M  bool `json:"m,omitempty"`  // ToggleModal
	MX int  `json:"mx"`           // MouseX
	MY int  `json:"my"`           // MouseY
	MC bool `json:"mc,omitempty"` // MouseClick
}

// ReplayData contains all data needed to replay a navigation session
type ReplayData struct {
	Version   string       `json:"version"`
	Layout    string       `json:"layout"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
