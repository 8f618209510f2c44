package systems

import (
	"strings"

	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the Input singleton.
// Must run BEFORE the level pipeline so a paused scene still reads keys.
func UpdateInput(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	left, right, up, down := getAnalogStickState(gamepadIDs)
	if left || right || up || down {
		gamepadUsed = true
	}
	mergeAnalog(input, left, right, up, down)

	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}

	x, y := ebiten.CursorPosition()
	input.Cursor = dmath.Vec2{X: float64(x), Y: float64(y)}
	input.GrapplePrev = input.Grapple
	input.Grapple = ebiten.IsMouseButtonPressed(cfg.Input.GrappleButton)
	input.Click = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// mergeAnalog folds stick directions into the movement and menu actions.
func mergeAnalog(input *components.InputData, left, right, up, down bool) {
	if left {
		input.Current[cfg.ActionMoveLeft] = true
	}
	if right {
		input.Current[cfg.ActionMoveRight] = true
	}
	if up {
		input.Current[cfg.ActionMenuUp] = true
	}
	if down {
		input.Current[cfg.ActionMenuDown] = true
	}
}

// getAnalogStickState reads the left analog stick from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		if strings.Contains(strings.ToLower(ebiten.GamepadName(gpID)), "virtual") {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		left = left || horizontal < -deadzone
		right = right || horizontal > deadzone
		up = up || vertical < -deadzone
		down = down || vertical > deadzone
	}
	return
}

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
