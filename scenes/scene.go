package scenes

import (
	"fmt"
	"image/color"
	"log"

	cfg "github.com/automoto/riftline/config"
	"github.com/automoto/riftline/save"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one state of the game.
type Scene interface {
	Update(dt float64)
	Draw(screen *ebiten.Image)
	// NextState stays cfg.StateNone until the scene wants to be replaced.
	NextState() cfg.StateID
	// SwitchInfo is handed to the factory of the next scene.
	SwitchInfo() map[string]any
}

// Factory builds the scene of a state from the previous scene's switch info.
type Factory func(info map[string]any) Scene

// Session is the state shared by every scene.
type Session struct {
	Record *save.Record
	Store  save.Store
}

// Flush persists the record.
func (s *Session) Flush() {
	save.Flush(s.Store, s.Record)
}

// Factories returns the scene constructors of the game.
func (s *Session) Factories() map[cfg.StateID]Factory {
	return map[cfg.StateID]Factory{
		cfg.StateMainMenu: func(map[string]any) Scene { return NewMenuScene(s) },
		cfg.StateLevel:    func(info map[string]any) Scene { return NewLevelScene(s, info) },
		cfg.StateEnding:   func(map[string]any) Scene { return NewEndingScene(s) },
	}
}

// Driver owns the current scene and replaces it when it asks to.
type Driver struct {
	current   Scene
	state     cfg.StateID
	factories map[cfg.StateID]Factory
}

// NewDriver creates the scene of start.
func NewDriver(factories map[cfg.StateID]Factory, start cfg.StateID) (*Driver, error) {
	d := &Driver{factories: factories}
	if err := d.switchTo(start, nil); err != nil {
		return nil, err
	}
	return d, nil
}

// Update runs the current scene once, then builds at most one replacement.
// The old scene is dropped and never called again.
func (d *Driver) Update(dt float64) error {
	d.current.Update(dt)

	next := d.current.NextState()
	if next == cfg.StateNone {
		return nil
	}
	log.Printf("Switching scene %s -> %s", d.state, next)
	return d.switchTo(next, d.current.SwitchInfo())
}

func (d *Driver) switchTo(state cfg.StateID, info map[string]any) error {
	factory, ok := d.factories[state]
	if !ok {
		return fmt.Errorf("no scene for state %q", state)
	}
	d.current = factory(info)
	d.state = state
	return nil
}

func (d *Driver) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	d.current.Draw(screen)
}

// State is the state of the current scene.
func (d *Driver) State() cfg.StateID {
	return d.state
}
