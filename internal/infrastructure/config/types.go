package config

// NavigationConfig is the root config for navigation.json
type NavigationConfig struct {
	Display DisplayConfig `json:"display"`
	Search  SearchConfig  `json:"search"`
	Input   InputConfig   `json:"input"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

// SearchConfig tunes automatic directional search
type SearchConfig struct {
	MaxAngle        float64  `json:"maxAngle"`        // Widest scored deviation (degrees)
	AngleRatio      *float64 `json:"angleRatio"`      // Weight of the angular penalty, nil for the default
	LineLength      float64  `json:"lineLength"`      // Segment length (pixels)
	InitialCapacity int      `json:"initialCapacity"` // Scratch buffer size
}

// InputConfig configures held-direction repeat
type InputConfig struct {
	RepeatDelay    int `json:"repeatDelay"`    // Frames before a held direction repeats
	RepeatInterval int `json:"repeatInterval"` // Frames between repeats
	StickDeadZone  int `json:"stickDeadZone"`  // Stick deflection (percent) before it counts as a direction
}
