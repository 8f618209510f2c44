package components

import (
	"github.com/automoto/riftline/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [config.ActionCount]bool
	Previous        [config.ActionCount]bool
	LastInputMethod InputMethod

	// Cursor is in screen space; the camera maps it into the world.
	Cursor      dmath.Vec2
	Grapple     bool // grapple button held
	GrapplePrev bool
	Click       bool // left button pressed this frame
}

// GrapplePressed reports the frame the grapple button went down.
func (in *InputData) GrapplePressed() bool { return in.Grapple && !in.GrapplePrev }

// GrappleReleased reports the frame the grapple button came up.
func (in *InputData) GrappleReleased() bool { return !in.Grapple && in.GrapplePrev }

var Input = donburi.NewComponentType[InputData]()
