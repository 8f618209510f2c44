package systems

import (
	"github.com/automoto/riftline/components"
	"github.com/automoto/riftline/shared/gamemath"
	"github.com/automoto/riftline/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves every body-backed trigger box to its body.
func UpdateObjects(ecs *ecs.ECS) {
	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		syncObject(components.Object.Get(e).Object, components.Body.Get(e))
	})
}

func syncObject(obj *resolv.Object, b *gamemath.Body) {
	obj.X = float64(b.Rect.X)
	obj.Y = float64(b.Rect.Y)
	obj.Update()
}

func objectRect(obj *resolv.Object) gamemath.Rect {
	return gamemath.Rect{
		X: gamemath.Round(obj.X),
		Y: gamemath.Round(obj.Y),
		W: gamemath.Round(obj.W),
		H: gamemath.Round(obj.H),
	}
}

// Touching returns the entries tagged tag whose boxes overlap obj. The space
// only narrows the search to shared cells, so each hit is confirmed against
// the exact boxes.
func Touching(obj *resolv.Object, tag string) []*donburi.Entry {
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	box := objectRect(obj)
	var hits []*donburi.Entry
	for _, o := range check.ObjectsByTags(tag) {
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		if objectRect(o).Overlaps(box) {
			hits = append(hits, entry)
		}
	}
	return hits
}

// Overlaps reports whether entry's trigger box overlaps the player's.
func Overlaps(player, entry *donburi.Entry) bool {
	if player == nil || entry == nil {
		return false
	}
	a := objectRect(components.Object.Get(player).Object)
	b := objectRect(components.Object.Get(entry).Object)
	return a.Overlaps(b)
}

// playerEntry returns the live player, if any.
func playerEntry(e *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Player.First(e.World)
}

// removeEntity drops an entry and its trigger box.
func removeEntity(e *ecs.ECS, entry *donburi.Entry) {
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry).Object
		if obj != nil && obj.Space != nil {
			obj.Space.Remove(obj)
		}
	}
	e.World.Remove(entry.Entity())
}
