package components

import (
	"github.com/automoto/riftline/config"
	"github.com/automoto/riftline/shared/gamemath"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Speed float64 // horizontal pixels per dt unit
	Jump  float64 // negative impulse

	// One hook per mode; Mode picks the live one.
	Pull  *gamemath.Grapple
	Swing *gamemath.Swing
	Mode  config.GrappleMode

	Alive bool
}

// Hook returns the grapple of the active mode.
func (p *PlayerData) Hook() gamemath.Hook {
	if p.Mode == config.GrappleSwing {
		return p.Swing
	}
	return p.Pull
}

// Attached reports whether the active hook holds an anchor.
func (p *PlayerData) Attached() bool {
	if p.Mode == config.GrappleSwing {
		return p.Swing.Attached
	}
	return p.Pull.Attached
}

// SetMode switches hooks, dropping whatever the old one held.
func (p *PlayerData) SetMode(m config.GrappleMode) {
	if m == p.Mode {
		return
	}
	p.Hook().Reset()
	p.Mode = m
}

var Player = donburi.NewComponentType[PlayerData]()
