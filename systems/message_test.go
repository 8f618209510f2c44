package systems

import (
	"testing"

	"github.com/automoto/riftline/components"
	cfg "github.com/automoto/riftline/config"
	"github.com/automoto/riftline/systems/factory"
	"github.com/stretchr/testify/assert"
)

func TestNoteFadesWhileTouched(t *testing.T) {
	e := newTestLevel(t)
	entry := factory.CreateNote(e, object("note", 100, 144, 16, 16, prop("text", "Press {jump}")), nil)
	note := components.Note.Get(entry)

	placePlayer(t, e, 100, 144)
	for i := 0; i < 200; i++ {
		UpdateNotes(e)
	}
	assert.True(t, note.Interacting)
	assert.Equal(t, 255.0, note.Alpha)

	placePlayer(t, e, 300, 144)
	UpdateNotes(e)
	assert.False(t, note.Interacting)
	assert.InDelta(t, 255-cfg.Note.AlphaSpeed, note.Alpha, 1e-9)

	for i := 0; i < 200; i++ {
		UpdateNotes(e)
	}
	assert.Zero(t, note.Alpha)
}

func TestResolvePlaceholders(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		method components.InputMethod
		want   string
	}{
		{"keyboard", "Press {jump} to jump", components.InputKeyboard, "Press SPACE to jump"},
		{"gamepad", "Press {jump} to jump", components.InputGamepad, "Press A to jump"},
		{"unknown stays", "Press {fly}", components.InputKeyboard, "Press {fly}"},
		{"several", "{smash} then {interact}", components.InputKeyboard, "G then E"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolvePlaceholders(tt.text, tt.method))
		})
	}
}
