package components

import (
	"github.com/automoto/riftline/config"
	"github.com/automoto/riftline/save"
	"github.com/automoto/riftline/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// LevelData is the level scene singleton.
type LevelData struct {
	Map   *leveldata.Level
	Image *ebiten.Image // rendered tile layers, tinted at draw time
	Spawn dmath.Vec2    // mid-bottom of the map's player spawn

	// Sprites is the scene's image catalogue; nil in headless tests.
	Sprites map[string][]*ebiten.Image

	Record *save.Record
	Store  save.Store

	Dimension string
	Unlocked  []string
	Travelled map[string]bool
	// Settings is the dimension set the live entities were configured from.
	Settings *config.DimensionSet

	// NextState stays StateNone until a terminal condition picks a scene.
	NextState  config.StateID
	SwitchInfo map[string]any
	// Ending is set once a terminal fade-out has been started.
	Ending     bool
	endingNext config.StateID
}

// End starts the terminal fade toward next. Only the first call counts.
func (l *LevelData) End(next config.StateID, info map[string]any) {
	if l.Ending {
		return
	}
	l.Ending = true
	l.endingNext = next
	l.SwitchInfo = info
}

// Finish publishes the pending state once the fade-out is dark.
func (l *LevelData) Finish() {
	if l.Ending {
		l.NextState = l.endingNext
	}
}

// Visit marks a dimension as travelled and reports whether it is new.
func (l *LevelData) Visit(name string) bool {
	if l.Travelled == nil {
		l.Travelled = map[string]bool{}
	}
	if l.Travelled[name] {
		return false
	}
	l.Travelled[name] = true
	return true
}

var Level = donburi.NewComponentType[LevelData]()
