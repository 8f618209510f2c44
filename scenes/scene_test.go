package scenes

import (
	"testing"

	cfg "github.com/automoto/riftline/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScene struct {
	name    string
	updates []float64
	next    cfg.StateID
	info    map[string]any
	got     map[string]any
}

func (f *fakeScene) Update(dt float64) { f.updates = append(f.updates, dt) }
func (f *fakeScene) Draw(*ebiten.Image) {}
func (f *fakeScene) NextState() cfg.StateID { return f.next }
func (f *fakeScene) SwitchInfo() map[string]any { return f.info }

type recorder struct {
	built []*fakeScene
}

func (r *recorder) factory(name string) Factory {
	return func(info map[string]any) Scene {
		s := &fakeScene{name: name, got: info}
		r.built = append(r.built, s)
		return s
	}
}

func (r *recorder) factories() map[cfg.StateID]Factory {
	return map[cfg.StateID]Factory{
		cfg.StateMainMenu: r.factory("menu"),
		cfg.StateLevel:    r.factory("level"),
		cfg.StateEnding:   r.factory("ending"),
	}
}

func TestDriverStaysWithoutNextState(t *testing.T) {
	r := &recorder{}
	d, err := NewDriver(r.factories(), cfg.StateMainMenu)
	require.NoError(t, err)

	require.NoError(t, d.Update(1.5))
	require.NoError(t, d.Update(2))

	assert.Len(t, r.built, 1)
	assert.Equal(t, []float64{1.5, 2}, r.built[0].updates)
	assert.Equal(t, cfg.StateMainMenu, d.State())
}

func TestDriverSwitchesOncePerUpdate(t *testing.T) {
	r := &recorder{}
	d, err := NewDriver(r.factories(), cfg.StateLevel)
	require.NoError(t, err)

	first := r.built[0]
	first.next = cfg.StateLevel
	first.info = map[string]any{"retry": true}
	require.NoError(t, d.Update(1))

	require.Len(t, r.built, 2)
	second := r.built[1]
	assert.Equal(t, map[string]any{"retry": true}, second.got)
	assert.Empty(t, second.updates, "the new scene is not updated in the frame it is built")

	require.NoError(t, d.Update(1))
	assert.Len(t, first.updates, 1, "the old scene is dropped")
	assert.Len(t, second.updates, 1)
}

func TestDriverFollowsChain(t *testing.T) {
	r := &recorder{}
	d, err := NewDriver(r.factories(), cfg.StateMainMenu)
	require.NoError(t, err)

	r.built[0].next = cfg.StateLevel
	require.NoError(t, d.Update(1))
	r.built[1].next = cfg.StateEnding
	require.NoError(t, d.Update(1))

	assert.Equal(t, cfg.StateEnding, d.State())
	assert.Equal(t, "ending", r.built[2].name)
}

func TestDriverUnknownState(t *testing.T) {
	_, err := NewDriver(map[cfg.StateID]Factory{}, cfg.StateLevel)
	assert.Error(t, err)

	r := &recorder{}
	factories := r.factories()
	delete(factories, cfg.StateEnding)
	d, err := NewDriver(factories, cfg.StateLevel)
	require.NoError(t, err)
	r.built[0].next = cfg.StateEnding
	assert.Error(t, d.Update(1))
}

func TestSessionFactoriesCoverEveryState(t *testing.T) {
	s := &Session{}
	factories := s.Factories()
	for _, state := range []cfg.StateID{cfg.StateMainMenu, cfg.StateLevel, cfg.StateEnding} {
		assert.Contains(t, factories, state)
	}
	assert.NotContains(t, factories, cfg.StateNone)
}
