package components

import "github.com/yohamta/donburi"

// NoteData is a tutorial hint that fades in while the player stands on it.
type NoteData struct {
	Text        string
	Alpha       float64 // 0-255
	Interacting bool
}

var Note = donburi.NewComponentType[NoteData]()
