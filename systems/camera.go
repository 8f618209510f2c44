package systems

import (
	"math"

	"github.com/automoto/riftline/archetypes"
	"github.com/automoto/riftline/components"
	"github.com/automoto/riftline/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetCamera returns the camera singleton, creating it if needed.
func GetCamera(e *ecs.ECS) *components.CameraData {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		entry = archetypes.Camera.Spawn(e)
	}
	return components.Camera.Get(entry)
}

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	updateScreenShake(cameraEntry, camera)

	p, ok := playerEntry(e)
	if !ok {
		return
	}
	rect := components.Body.Get(p).Rect
	target := rect.Center()

	if lvl := GetLevel(e); lvl != nil && lvl.Map != nil {
		target.X = clampCamera(target.X, float64(config.C.Width), float64(lvl.Map.Width))
		target.Y = clampCamera(target.Y, float64(config.C.Height), float64(lvl.Map.Height))
	}

	camera.Position.X += (target.X - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (target.Y - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampCamera keeps the view inside the level along one axis. A level
// smaller than the screen is centred.
func clampCamera(v, screen, level float64) float64 {
	lo, hi := screen/2, level-screen/2
	if hi < lo {
		return level / 2
	}
	return math.Max(lo, math.Min(hi, v))
}

// SnapCamera centres the camera on the player without smoothing.
func SnapCamera(e *ecs.ECS) {
	smoothing := config.Camera.FollowSmoothing
	config.Camera.FollowSmoothing = 1
	UpdateCamera(e)
	config.Camera.FollowSmoothing = smoothing
}

// updateScreenShake sets this frame's shake offset and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	camera.Shake.X, camera.Shake.Y = 0, 0
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	progress := 0.0
	if shake.Duration > 0 {
		progress = math.Max(0, float64(shake.Duration-shake.Elapsed)/float64(shake.Duration))
	}
	intensity := shake.Intensity * progress

	camera.Shake.X = math.Sin(float64(shake.Elapsed)*1.1) * intensity
	camera.Shake.Y = math.Cos(float64(shake.Elapsed)*1.3) * intensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}
	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.SetValue(cameraEntry, components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}
