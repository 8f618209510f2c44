package factory

import (
	"log"

	"github.com/automoto/riftline/archetypes"
	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/automoto/riftline/save"
	"github.com/automoto/riftline/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Object layers read from the map.
const (
	LayerEnemies     = "enemies"
	LayerCheckpoints = "checkpoints"
	LayerNotes       = "notes"
	LayerPortals     = "portals"
	LayerSpikes      = "spikes"
	LayerShooters    = "shooters"
	LayerRing        = "ring"
	LayerItems       = "items"
	LayerBarrels     = "barrels"
)

// LevelSetup is everything a level scene is built from.
type LevelSetup struct {
	Map     *leveldata.Level
	Image   *ebiten.Image
	Sprites Sprites
	Record  *save.Record
	Store   save.Store
}

// CreateLevel spawns the level singleton and every entity of the map. The
// player starts on the recorded checkpoint, or on the map spawn without one.
func CreateLevel(ecs *ecs.ECS, setup LevelSetup) *donburi.Entry {
	m := setup.Map
	CreateSpace(ecs, m.Width, m.Height, m.TileW, m.TileH)

	level := archetypes.Level.Spawn(ecs)
	spawn := mapSpawn(m)
	components.Level.SetValue(level, components.LevelData{
		Map:       m,
		Image:     setup.Image,
		Spawn:     spawn,
		Sprites:   setup.Sprites,
		Record:    setup.Record,
		Store:     setup.Store,
		Dimension: setup.Record.LatestDimension,
		Travelled: map[string]bool{setup.Record.LatestDimension: true},
	})
	components.Transition.SetValue(level, components.NewFade(true, cfg.Transition.FadeSpeed))

	tileW, tileH := float64(m.TileW), float64(m.TileH)
	for _, o := range m.Layer(LayerEnemies) {
		if _, err := CreateEnemy(ecs, o, tileW, tileH, setup.Sprites); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
	for _, o := range m.Layer(LayerCheckpoints) {
		CreateCheckpoint(ecs, o, setup.Sprites)
	}
	for _, o := range m.Layer(LayerNotes) {
		CreateNote(ecs, o, setup.Sprites)
	}
	for _, o := range m.Layer(LayerPortals) {
		CreatePortal(ecs, o, setup.Sprites)
	}
	for _, o := range m.Layer(LayerSpikes) {
		CreateSpike(ecs, o, setup.Sprites)
	}
	for _, o := range m.Layer(LayerShooters) {
		CreateShooter(ecs, o, setup.Sprites)
	}
	for _, o := range ringObjects(m) {
		CreateRing(ecs, o, setup.Sprites, setup.Record.HasRing)
	}
	for _, o := range m.Layer(LayerBarrels) {
		CreateBarrel(ecs, o, setup.Sprites)
	}

	start := spawn
	if setup.Record.HasCheckpoint() {
		start = setup.Record.LatestCheckpoint
	}
	player := CreatePlayer(ecs, start, setup.Sprites)
	CreateCamera(ecs, components.Body.Get(player).Rect.Center())

	return level
}

// ringObjects is every object of the ring layer plus objects named "ring" in
// the generic items layer.
func ringObjects(m *leveldata.Level) []leveldata.Object {
	rings := append([]leveldata.Object(nil), m.Layer(LayerRing)...)
	for _, o := range m.Layer(LayerItems) {
		if o.Name == "ring" {
			rings = append(rings, o)
		}
	}
	return rings
}

// mapSpawn is the mid-bottom of the spawn object in the spawn layer.
func mapSpawn(m *leveldata.Level) dmath.Vec2 {
	for _, o := range m.Layer(cfg.Level.SpawnLayer) {
		if o.Name == "spawn" || o.Name == "" {
			r := objectBox(o)
			return r.MidBottom()
		}
	}
	log.Printf("Warning: %s has no player spawn", m.Name)
	return dmath.Vec2{X: float64(m.TileW) * 2, Y: float64(m.TileH) * 2}
}
