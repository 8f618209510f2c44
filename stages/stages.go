// Package stages runs a scene as a fixed sequence of update/draw stages.
package stages

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

type (
	UpdateFunc func(e *ecs.ECS)
	DrawFunc   func(e *ecs.ECS, screen *ebiten.Image)
)

// Stage is one step of a scene frame.
type Stage interface {
	Name() string
	Update(e *ecs.ECS)
	Draw(e *ecs.ECS, screen *ebiten.Image)
}

// Gate is a stage that can hold the pipeline. While it holds, the stages
// before it are not updated.
type Gate interface {
	Stage
	Holding(e *ecs.ECS) bool
}

// Func is a Stage built from plain system functions. Either may be nil.
type Func struct {
	Label    string
	UpdateFn UpdateFunc
	DrawFn   DrawFunc
}

func (f Func) Name() string { return f.Label }

func (f Func) Update(e *ecs.ECS) {
	if f.UpdateFn != nil {
		f.UpdateFn(e)
	}
}

func (f Func) Draw(e *ecs.ECS, screen *ebiten.Image) {
	if f.DrawFn != nil {
		f.DrawFn(e, screen)
	}
}

// GateFunc is a Func that holds while HoldFn reports true.
type GateFunc struct {
	Func
	HoldFn func(e *ecs.ECS) bool
}

func (g GateFunc) Holding(e *ecs.ECS) bool {
	return g.HoldFn != nil && g.HoldFn(e)
}

// Updates runs several update functions as one, in order.
func Updates(fns ...UpdateFunc) UpdateFunc {
	return func(e *ecs.ECS) {
		for _, fn := range fns {
			fn(e)
		}
	}
}

// Draws runs several draw functions as one, in order.
func Draws(fns ...DrawFunc) DrawFunc {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		for _, fn := range fns {
			fn(e, screen)
		}
	}
}

// Pipeline updates and draws its stages in declaration order.
type Pipeline struct {
	stages []Stage
}

func NewPipeline(stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

// Stages returns the stages in run order.
func (p *Pipeline) Stages() []Stage {
	return p.stages
}

// Update runs every stage from the last holding gate onward. Gates are
// polled before any stage runs, so a gate that starts holding during this
// frame takes effect on the next one.
func (p *Pipeline) Update(e *ecs.ECS) {
	start := 0
	for i, s := range p.stages {
		if g, ok := s.(Gate); ok && g.Holding(e) {
			start = i
		}
	}
	for _, s := range p.stages[start:] {
		s.Update(e)
	}
}

// Draw draws every stage, held or not.
func (p *Pipeline) Draw(e *ecs.ECS, screen *ebiten.Image) {
	for _, s := range p.stages {
		s.Draw(e, screen)
	}
}
