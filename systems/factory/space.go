package factory

import (
	"github.com/automoto/riftline/archetypes"
	"github.com/automoto/riftline/components"
	"github.com/automoto/riftline/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// attachObject gives an entry a trigger box and registers it with the space.
func attachObject(ecs *ecs.ECS, entry *donburi.Entry, r gamemath.Rect, tag string) *resolv.Object {
	w, h := float64(r.W), float64(r.H)
	obj := resolv.NewObject(float64(r.X), float64(r.Y), w, h, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}
