package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/focusnav/internal/domain/nav"
)

func TestIntentTypes(t *testing.T) {
	intents := []Intent{
		NavigateIntent{Direction: nav.DirUp},
		PointIntent{X: 1, Y: 2},
		SubmitIntent{},
		ToggleModalIntent{},
	}

	var kinds []string
	for _, in := range intents {
		switch v := in.(type) {
		case NavigateIntent:
			kinds = append(kinds, "navigate:"+v.Direction.String())
		case PointIntent:
			kinds = append(kinds, "point")
		case SubmitIntent:
			kinds = append(kinds, "submit")
		case ToggleModalIntent:
			kinds = append(kinds, "modal")
		}
	}

	assert.Equal(t, []string{"navigate:" + nav.DirUp.String(), "point", "submit", "modal"}, kinds)
}
