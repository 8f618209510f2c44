package factory

import (
	"math"
	"time"

	"github.com/automoto/riftline/archetypes"
	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/automoto/riftline/shared/gamemath"
	"github.com/automoto/riftline/shared/leveldata"
	"github.com/automoto/riftline/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// pointSize is the box given to objects placed as points in the editor.
const pointSize = 16

func objectBox(o leveldata.Object) gamemath.Rect {
	r := o.Rect()
	if r.W == 0 {
		r.W = pointSize
	}
	if r.H == 0 {
		r.H = pointSize
	}
	return r
}

// CreateCheckpoint creates a checkpoint entity with collision detection
func CreateCheckpoint(ecs *ecs.ECS, o leveldata.Object, sprites Sprites) *donburi.Entry {
	checkpoint := archetypes.Checkpoint.Spawn(ecs)
	attachObject(ecs, checkpoint, objectBox(o), tags.ResolvCheckpoint)
	components.Checkpoint.SetValue(checkpoint, components.CheckpointData{
		ID:              o.Int("id"),
		UnlockDimension: o.Bool("unlock_dimension"),
	})
	components.Sprite.SetValue(checkpoint, components.SpriteData{Image: sprites.Get("checkpoint")})
	return checkpoint
}

// CreateNote creates a tutorial note that fades in on contact.
func CreateNote(ecs *ecs.ECS, o leveldata.Object, sprites Sprites) *donburi.Entry {
	note := archetypes.Note.Spawn(ecs)
	attachObject(ecs, note, objectBox(o), tags.ResolvNote)
	components.Note.SetValue(note, components.NoteData{Text: o.Text("text")})
	components.Sprite.SetValue(note, components.SpriteData{
		Image: sprites.Get("note"),
		Alt:   sprites.Get("note_active"),
	})
	return note
}

// CreatePortal creates a dimension portal, or the final portal when the
// object is named end_portal.
func CreatePortal(ecs *ecs.ECS, o leveldata.Object, sprites Sprites) *donburi.Entry {
	portal := archetypes.Portal.Spawn(ecs)
	attachObject(ecs, portal, objectBox(o), tags.ResolvPortal)
	components.Portal.SetValue(portal, components.PortalData{End: o.Name == "end_portal"})
	components.Sprite.SetValue(portal, components.SpriteData{
		Image: sprites.Get("portal"),
		Alt:   sprites.Get("portal_active"),
	})
	return portal
}

// CreateSpike creates a hazard that kills on contact.
func CreateSpike(ecs *ecs.ECS, o leveldata.Object, sprites Sprites) *donburi.Entry {
	spike := archetypes.Spike.Spawn(ecs)
	attachObject(ecs, spike, objectBox(o), tags.ResolvSpike)
	components.Sprite.SetValue(spike, components.SpriteData{Image: sprites.Get("spike")})
	return spike
}

// CreateShooter creates a turret. Angle is in degrees counter-clockwise and
// cooldown in seconds.
func CreateShooter(ecs *ecs.ECS, o leveldata.Object, sprites Sprites) *donburi.Entry {
	shooter := archetypes.Shooter.Spawn(ecs)
	box := o.Rect()
	box.W, box.H = cfg.Shooter.Size, cfg.Shooter.Size
	attachObject(ecs, shooter, box, tags.ResolvShooter)

	maxDist := o.Float("max_dist")
	if maxDist <= 0 {
		maxDist = cfg.Shooter.DefaultMaxDst
	}
	angle := o.Float("angle")
	components.Shooter.SetValue(shooter, components.ShooterData{
		Angle:    angle,
		Cooldown: time.Duration(o.Float("cooldown") * float64(time.Second)),
		MaxDist:  maxDist,
		Damage:   o.Int("damage"),
	})
	components.Sprite.SetValue(shooter, components.SpriteData{
		Image:    sprites.Get("shooter"),
		Rotation: -angle * math.Pi / 180,
		PivotX:   0.5,
		PivotY:   0.5,
	})
	return shooter
}

// CreateRing places the ring. It starts picked up when the record says so.
func CreateRing(ecs *ecs.ECS, o leveldata.Object, sprites Sprites, carried bool) *donburi.Entry {
	ring := archetypes.Ring.Spawn(ecs)
	attachObject(ecs, ring, objectBox(o), tags.ResolvRing)
	components.Ring.SetValue(ring, components.RingData{OnGround: !carried})
	components.Sprite.SetValue(ring, components.SpriteData{Image: sprites.Get("ring")})
	return ring
}

// CreateBarrel creates a breakable barrel, optionally hiding the egg.
func CreateBarrel(ecs *ecs.ECS, o leveldata.Object, sprites Sprites) *donburi.Entry {
	barrel := archetypes.Barrel.Spawn(ecs)
	attachObject(ecs, barrel, objectBox(o), tags.ResolvBarrel)
	components.Barrel.SetValue(barrel, components.BarrelData{Easter: o.Bool("easter")})
	components.Sprite.SetValue(barrel, components.SpriteData{
		Image: sprites.Get("barrel"),
		Alt:   sprites.Get("barrel_active"),
	})
	return barrel
}
