package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// FrameData is the scene clock, advanced once per tick.
type FrameData struct {
	DT  float64       // scaled delta for this frame
	Now time.Duration // monotonic time since the scene started
}

var Frame = donburi.NewComponentType[FrameData]()
