package factory

import (
	"github.com/automoto/riftline/archetypes"
	"github.com/automoto/riftline/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the camera centred on a world point.
func CreateCamera(ecs *ecs.ECS, at dmath.Vec2) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Position: at})
	return camera
}
