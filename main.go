package main

import (
	"log"
	"time"

	"github.com/automoto/riftline/assets"
	"github.com/automoto/riftline/config"
	"github.com/automoto/riftline/fonts"
	"github.com/automoto/riftline/save"
	"github.com/automoto/riftline/scenes"
	"github.com/automoto/riftline/shared/gamemath"
	"github.com/automoto/riftline/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	driver  *scenes.Driver
	session *scenes.Session
	last    time.Time
}

func NewGame(session *scenes.Session) (*Game, error) {
	if err := fonts.LoadDefaults(); err != nil {
		return nil, err
	}
	if err := assets.LoadShaders(); err != nil {
		return nil, err
	}
	systems.PreloadAllSFX()

	driver, err := scenes.NewDriver(session.Factories(), config.StateMainMenu)
	if err != nil {
		return nil, err
	}
	return &Game{driver: driver, session: session}, nil
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.session.Flush()
		return ebiten.Termination
	}

	now := time.Now()
	raw := time.Second / time.Duration(ebiten.TPS())
	if !g.last.IsZero() {
		raw = now.Sub(g.last)
	}
	g.last = now

	return g.driver.Update(gamemath.ScaleDelta(raw, config.Time.DeltaScale, config.Time.DeltaCap))
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.driver.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

// openSession loads the save record, falling back to an in-memory store when
// the data directory is unavailable. A save that exists but cannot be read
// is fatal.
func openSession() *scenes.Session {
	var store save.Store
	disk, err := save.OpenDisk(config.C.AppName)
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		store = &save.MemoryStore{}
	} else {
		store = disk
	}

	record, err := store.Load()
	if err != nil {
		log.Fatalf("Failed to load progress: %v", err)
	}
	return &scenes.Session{Record: record, Store: store}
}

func main() {
	ebiten.SetWindowSize(config.C.Width*config.C.WindowScale, config.C.Height*config.C.WindowScale)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetWindowClosingHandled(true)

	if w := config.StartDevReload(); w != nil {
		defer w.Close()
	}

	game, err := NewGame(openSession())
	if err != nil {
		log.Fatal(err)
	}
	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
