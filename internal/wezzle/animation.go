package wezzle

import "github.com/vovakirdan/tui-wezzle/internal/core"

// Animation is a non-blocking effect advanced once per tick.
// Owners poll IsFinished instead of waiting on callbacks.
type Animation interface {
	Update()
	IsFinished() bool
}

// Axis is the direction a move animation travels along.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// cellUnits is one cell expressed in animation units.
const cellUnits = 1000

// MoveAnimation slides a tile a whole number of cells along one axis,
// accelerating every tick.
type MoveAnimation struct {
	tile     *Tile
	axis     Axis
	distance int // signed, in cell units
	traveled int
	velocity int
	accel    int
	finished bool
}

// NewMoveAnimation creates an animation moving tile by cells along axis,
// starting at speed units per tick and gaining accel units per tick.
func NewMoveAnimation(tile *Tile, axis Axis, cells, speed, accel int) *MoveAnimation {
	a := &MoveAnimation{
		tile:     tile,
		axis:     axis,
		distance: cells * cellUnits,
		velocity: max(speed, 1),
		accel:    max(accel, 0),
	}
	if cells == 0 {
		a.finished = true
	}
	return a
}

func (a *MoveAnimation) Axis() Axis { return a.axis }
func (a *MoveAnimation) Tile() *Tile { return a.tile }
func (a *MoveAnimation) IsFinished() bool { return a.finished }

// Update advances the tile toward its destination.
func (a *MoveAnimation) Update() {
	if a.finished {
		return
	}
	total := core.Abs(a.distance)
	a.traveled += a.velocity
	a.velocity += a.accel
	if a.traveled >= total {
		a.traveled = total
		a.finished = true
	}

	offset := a.traveled
	if a.distance < 0 {
		offset = -offset
	}
	if a.axis == AxisVertical {
		a.tile.offsetY = offset
	} else {
		a.tile.offsetX = offset
	}
}

// ZoomAnimation scales a tile in (appearing) or out (vanishing).
type ZoomAnimation struct {
	tile  *Tile
	in    bool
	ticks int
	total int
}

// NewZoomIn creates an animation growing tile from nothing over ticks.
func NewZoomIn(tile *Tile, ticks int) *ZoomAnimation {
	tile.scale = 0
	return &ZoomAnimation{tile: tile, in: true, total: max(ticks, 1)}
}

// NewZoomOut creates an animation shrinking tile to nothing over ticks.
func NewZoomOut(tile *Tile, ticks int) *ZoomAnimation {
	return &ZoomAnimation{tile: tile, total: max(ticks, 1)}
}

func (a *ZoomAnimation) IsFinished() bool { return a.ticks >= a.total }

// Update advances the zoom by one tick.
func (a *ZoomAnimation) Update() {
	if a.IsFinished() {
		return
	}
	a.ticks++
	s := a.ticks * cellUnits / a.total
	if !a.in {
		s = cellUnits - s
	}
	a.tile.scale = s
}

// AnimationManager advances every running animation once per tick.
type AnimationManager struct {
	active []Animation
}

// NewAnimationManager creates an empty manager.
func NewAnimationManager() *AnimationManager {
	return &AnimationManager{}
}

// Add schedules a single animation.
func (m *AnimationManager) Add(a Animation) {
	if a != nil && !a.IsFinished() {
		m.active = append(m.active, a)
	}
}

// AddAll schedules a batch of animations.
func (m *AnimationManager) AddAll(anims []Animation) {
	for _, a := range anims {
		m.Add(a)
	}
}

// Update advances all animations and forgets the finished ones.
func (m *AnimationManager) Update() {
	kept := m.active[:0]
	for _, a := range m.active {
		a.Update()
		if !a.IsFinished() {
			kept = append(kept, a)
		}
	}
	clear(m.active[len(kept):])
	m.active = kept
}

// Len returns the number of running animations.
func (m *AnimationManager) Len() int {
	return len(m.active)
}

// Active returns true while any animation is running.
func (m *AnimationManager) Active() bool {
	return len(m.active) > 0
}

// Clear drops every running animation.
func (m *AnimationManager) Clear() {
	m.active = nil
}

// allFinished reports whether every animation in anims has completed.
func allFinished(anims []Animation) bool {
	for _, a := range anims {
		if !a.IsFinished() {
			return false
		}
	}
	return true
}
