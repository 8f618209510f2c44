package gamemath

import (
	"math"
	"time"

	dmath "github.com/yohamta/donburi/features/math"
)

// GrappleEvent is a user-visible outcome of a grapple step.
type GrappleEvent int

const (
	GrappleNone GrappleEvent = iota
	GrappleAttached
	GrappleReleased
	GrappleRejectedDownward
	GrappleRejectedEnemy
	GrappleRejectedUngrappleable
)

// GrappleConfig is shared by the pull and swing modes.
type GrappleConfig struct {
	Range         float64 // tiles
	Speed         float64 // pixels per step while extending
	TileW, TileH  float64
	HoldThreshold time.Duration
	AnchorRadius  int

	PullTime     time.Duration
	StopDistance float64
	PullDamping  float64

	SwingReach      float64
	SwingStep       float64
	SwingAngularVel float64
	SwingCorrection float64
	SwingVelDivisor float64
	SwingDamping    float64
}

// DefaultGrappleConfig returns the stock tuning for 16px tiles.
func DefaultGrappleConfig() GrappleConfig {
	return GrappleConfig{
		Range:           15,
		Speed:           20,
		TileW:           16,
		TileH:           16,
		HoldThreshold:   100 * time.Millisecond,
		AnchorRadius:    2,
		PullTime:        400 * time.Millisecond,
		StopDistance:    20,
		PullDamping:     7,
		SwingReach:      192,
		SwingStep:       14,
		SwingAngularVel: 5,
		SwingCorrection: 0.18,
		SwingVelDivisor: 12,
		SwingDamping:    0.995,
	}
}

// MaxReach is the longest the line may get, in pixels.
func (c GrappleConfig) MaxReach() float64 {
	return c.Range * c.TileW
}

// GrappleInput is the mouse state relevant to the grapple for one frame. Aim
// is the cursor in world space.
type GrappleInput struct {
	Pressed  bool
	Released bool
	Aim      dmath.Vec2
}

// Target is an enemy box the probe may run into.
type Target struct {
	Rect          Rect
	Ungrappleable bool
}

// TileLookup returns the collidable tiles around a cell. It is called every
// frame so anchors are never trusted past the frame they were found in.
type TileLookup func(center TilePos, radius int) []Rect

// Hook is the mode-independent part of a grapple line: hold tracking, aiming,
// probe extension and anchor detection.
type Hook interface {
	Update(b *Body, in GrappleInput, now time.Duration, dt float64, tiles TileLookup, targets []Target) GrappleEvent
	Line() (start, end dmath.Vec2, visible bool)
	Reset()
}

// Sigmoid is the easing curve of the pull, 1/(1+e^(-3(x-1))).
func Sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-3*(x-1)))
}

// PullProgress is how far along the launch direction the body should be after
// elapsed time. It rises monotonically toward dist-stop without reaching it.
func PullProgress(elapsed, pullTime time.Duration, dist, stop float64) float64 {
	return Sigmoid(float64(elapsed)/float64(pullTime)) * (dist - stop)
}

// IsUpward reports whether a screen-space angle points above the horizon.
func IsUpward(angle float64) bool {
	return angle > -math.Pi && angle < 0
}

type line struct {
	Config GrappleConfig

	Start, End dmath.Vec2
	Angle      float64
	Distance   float64
	EngagedAt  time.Duration
	Extending  bool
	Attached   bool
	Visible    bool

	holding   bool
	holdStart time.Duration
	aimed     bool
}

func (l *line) Line() (dmath.Vec2, dmath.Vec2, bool) {
	return l.Start, l.End, l.Visible
}

// Reset drops the line and forgets the held button.
func (l *line) Reset() {
	l.holding = false
	l.aimed = false
	l.Distance = 0
	l.Attached = false
	l.Extending = false
	l.Visible = false
	l.End = l.Start
}

// track handles press and release edges. It reports whether the line was
// attached when released.
func (l *line) track(in GrappleInput, now time.Duration) (released bool) {
	if in.Pressed {
		l.holding = true
		l.holdStart = now
	}
	if in.Released {
		released = l.Attached
		l.Reset()
	}
	return released
}

func (l *line) active(now time.Duration) bool {
	return l.holding && now-l.holdStart > l.Config.HoldThreshold
}

// aim fixes the launch angle on the first active frame of a hold.
func (l *line) aim(in GrappleInput) GrappleEvent {
	if l.aimed {
		return GrappleNone
	}
	l.End = l.Start
	l.Angle = math.Atan2(in.Aim.Y-l.Start.Y, in.Aim.X-l.Start.X)
	l.aimed = true
	l.Extending = true
	if !IsUpward(l.Angle) {
		return GrappleRejectedDownward
	}
	return GrappleNone
}

func (l *line) anchor(tiles TileLookup) bool {
	if tiles == nil {
		return false
	}
	cell := PixelToTile(l.End, l.Config.TileW, l.Config.TileH)
	for _, t := range tiles(cell, l.Config.AnchorRadius) {
		if t.Contains(l.End) {
			return true
		}
	}
	return false
}

// engage records the first frame of contact.
func (l *line) engage(now time.Duration) bool {
	if l.Distance != 0 {
		return false
	}
	l.Distance = Distance(l.Start, l.End)
	l.EngagedAt = now
	l.Attached = true
	l.Extending = false
	return true
}

// extend advances the probe and keeps it within reach of the start point.
func (l *line) extend(step, reach float64) {
	if Distance(l.Start, l.End) <= reach {
		l.End.X += math.Cos(l.Angle) * step
		l.End.Y += math.Sin(l.Angle) * step
	}
	dx, dy := l.End.X-l.Start.X, l.End.Y-l.Start.Y
	if d := math.Hypot(dx, dy); d > reach && d > 0 {
		l.End.X = l.Start.X + dx*reach/d
		l.End.Y = l.Start.Y + dy*reach/d
	}
}

// detach forgets an anchor that is no longer backed by a tile.
func (l *line) detach() {
	if l.Attached {
		l.Attached = false
		l.Distance = 0
		l.Extending = true
	}
}

var (
	_ Hook = (*Grapple)(nil)
	_ Hook = (*Swing)(nil)
)

func bodyTop(b *Body) dmath.Vec2 {
	return dmath.Vec2{X: b.Pos.X + float64(b.Rect.W/2), Y: b.Pos.Y}
}

// Grapple pulls the body toward an anchored tile along an eased curve.
type Grapple struct {
	line
	startBody dmath.Vec2
}

// NewGrapple creates a pull-mode hook.
func NewGrapple(cfg GrappleConfig) *Grapple {
	return &Grapple{line: line{Config: cfg}}
}

// Update runs one frame of the pull hook against the body.
func (g *Grapple) Update(b *Body, in GrappleInput, now time.Duration, dt float64, tiles TileLookup, targets []Target) GrappleEvent {
	g.Start = bodyTop(b)
	g.Visible = false

	ev := GrappleNone
	if g.track(in, now) {
		b.Vel = dmath.Vec2{}
		ev = GrappleReleased
	}
	if !g.active(now) {
		return ev
	}
	if e := g.aim(in); e != GrappleNone {
		ev = e
	}
	if !IsUpward(g.Angle) {
		g.Extending = false
		return ev
	}
	g.Visible = true

	if g.anchor(tiles) {
		if g.engage(now) {
			g.startBody = b.Pos
			ev = GrappleAttached
		}
		if Distance(g.Start, g.End) > g.Config.StopDistance {
			g.pull(b, now, dt)
		} else {
			b.Vel = dmath.Vec2{}
		}
		return ev
	}
	g.detach()

	for _, t := range targets {
		if !t.Rect.Contains(g.End) {
			continue
		}
		g.Reset()
		if t.Ungrappleable {
			return GrappleRejectedUngrappleable
		}
		return GrappleRejectedEnemy
	}
	g.extend(g.Config.Speed, g.Config.MaxReach())
	return ev
}

func (g *Grapple) pull(b *Body, now time.Duration, dt float64) {
	progress := PullProgress(now-g.EngagedAt, g.Config.PullTime, g.Distance, g.Config.StopDistance)
	target := dmath.Vec2{
		X: g.startBody.X + math.Cos(g.Angle)*progress,
		Y: g.startBody.Y + math.Sin(g.Angle)*progress,
	}
	b.Vel.X = (target.X - b.Pos.X) * dt / g.Config.PullDamping
	b.Vel.Y = (target.Y - b.Pos.Y) * dt / g.Config.PullDamping
}

// Swing rotates the body around an anchored tile like a damped pendulum.
type Swing struct {
	line
	AngularVel float64 // degrees per step
	ExitVel    dmath.Vec2
}

// NewSwing creates a swing-mode hook.
func NewSwing(cfg GrappleConfig) *Swing {
	return &Swing{line: line{Config: cfg}, AngularVel: cfg.SwingAngularVel}
}

// Update runs one frame of the swing hook against the body.
func (s *Swing) Update(b *Body, in GrappleInput, now time.Duration, dt float64, tiles TileLookup, targets []Target) GrappleEvent {
	s.Start = bodyTop(b)
	s.Visible = false

	ev := GrappleNone
	if s.track(in, now) {
		b.Vel.Y = s.ExitVel.Y
		b.Momentum = s.ExitVel.X
		ev = GrappleReleased
	}
	if in.Released {
		s.ExitVel = dmath.Vec2{}
		s.AngularVel = s.Config.SwingAngularVel
	}
	if !s.active(now) {
		return ev
	}
	if e := s.aim(in); e != GrappleNone {
		ev = e
	}
	if !IsUpward(s.Angle) {
		s.Extending = false
		return ev
	}
	s.Visible = true

	if s.anchor(tiles) {
		if s.engage(now) {
			ev = GrappleAttached
		}
		s.rotate(b, tiles)
		return ev
	}
	s.detach()

	reach := math.Min(s.Config.SwingReach, s.Config.MaxReach())
	s.extend(s.Config.SwingStep, reach)
	return ev
}

func (s *Swing) rotate(b *Body, tiles TileLookup) {
	b.Vel.Y = 0

	rad := s.AngularVel * math.Pi / 180
	sin, cos := math.Sincos(rad)
	rx, ry := b.Pos.X-s.End.X, b.Pos.Y-s.End.Y
	next := dmath.Vec2{
		X: cos*rx - sin*ry + s.End.X,
		Y: sin*rx + cos*ry + s.End.Y,
	}
	s.ExitVel = dmath.Vec2{X: next.X - b.Pos.X, Y: next.Y - b.Pos.Y}

	radX, radY := next.X-s.End.X, next.Y-s.End.Y
	if n := math.Hypot(radX, radY); n > 0 {
		s.AngularVel += (radX/n - b.Vel.X/s.Config.SwingVelDivisor) * s.Config.SwingCorrection
	}
	s.AngularVel *= s.Config.SwingDamping

	box := RectAt(next, b.Rect.W, b.Rect.H)
	blocked := false
	for _, t := range tiles(b.Tile, s.Config.AnchorRadius) {
		if t.Overlaps(box) {
			blocked = true
			break
		}
	}
	if blocked {
		s.AngularVel = 0
	} else {
		b.Place(next)
	}
	b.Vel.X = 0
}
