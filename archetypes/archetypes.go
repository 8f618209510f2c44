package archetypes

import (
	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/automoto/riftline/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Object,
		components.Health,
		components.HealthBar,
		components.Sprite,
		components.Animation,
		components.Flash,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Body,
		components.Object,
		components.Sprite,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
		components.Frame,
		components.Transition,
		components.Background,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Checkpoint = newArchetype(
		tags.Checkpoint,
		components.Checkpoint,
		components.Object,
		components.Sprite,
	)
	Note = newArchetype(
		tags.Note,
		components.Note,
		components.Object,
		components.Sprite,
	)
	Portal = newArchetype(
		tags.Portal,
		components.Portal,
		components.Object,
		components.Sprite,
	)
	Spike = newArchetype(
		tags.Spike,
		components.Object,
		components.Sprite,
	)
	Shooter = newArchetype(
		tags.Shooter,
		components.Shooter,
		components.Object,
		components.Sprite,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Bullet,
	)
	Ring = newArchetype(
		tags.Ring,
		components.Ring,
		components.Object,
		components.Sprite,
	)
	Barrel = newArchetype(
		tags.Barrel,
		components.Barrel,
		components.Object,
		components.Sprite,
	)
	EasterEgg = newArchetype(
		tags.EasterEgg,
		components.EasterEgg,
		components.Object,
		components.Sprite,
	)
	TextParticle = newArchetype(
		tags.Particle,
		components.TextParticle,
	)
	AngularParticle = newArchetype(
		tags.Particle,
		components.AngularParticle,
	)
	Input = newArchetype(
		components.Input,
	)
	Audio = newArchetype(
		components.Audio,
	)
	Pause = newArchetype(
		components.Pause,
	)
	SoundIcon = newArchetype(
		components.SoundIcon,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
