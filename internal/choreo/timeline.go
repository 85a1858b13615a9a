// Package choreo runs the scripted drone flights: ordered stages of motion
// and holds, each stage starting only when the previous one has completed.
package choreo

import (
	"time"

	"district9/internal/component"
	"district9/internal/ecs"
	"district9/internal/vmath"
)

// Dest is a motion target. Axes without a value keep their current
// coordinate.
type Dest struct {
	X, Y       float64
	HasX, HasY bool
}

// ToX moves along the horizontal axis only.
func ToX(x float64) Dest { return Dest{X: x, HasX: true} }

// ToY moves along the vertical axis only.
func ToY(y float64) Dest { return Dest{Y: y, HasY: true} }

// ToXY moves on both axes.
func ToXY(x, y float64) Dest { return Dest{X: x, Y: y, HasX: true, HasY: true} }

func (d Dest) apply(from vmath.Vec2) vmath.Vec2 {
	if d.HasX {
		from.X = d.X
	}
	if d.HasY {
		from.Y = d.Y
	}
	return from
}

// Tween moves several entities toward one destination over a shared
// duration and easing curve.
type Tween struct {
	Targets  []ecs.EntityID
	To       Dest
	Duration time.Duration
	Ease     vmath.Ease
}

type taskKind uint8

const (
	taskTween taskKind = iota
	taskDelay
)

type task struct {
	id       uint64
	kind     taskKind
	elapsed  time.Duration
	duration time.Duration

	targets []ecs.EntityID
	from    []vmath.Vec2
	to      Dest
	ease    vmath.Ease

	done      func()
	cancelled bool
}

// Handle refers to one scheduled tween or delayed call.
type Handle struct {
	t *task
}

// Cancel stops the task before its callback fires. It reports whether the
// task was still pending. Cancelling the zero Handle is a no-op.
func (h Handle) Cancel() bool {
	if h.t == nil || h.t.cancelled || h.t.done == nil {
		return false
	}
	h.t.cancelled = true
	return true
}

// Pending reports whether the task is scheduled and not yet finished.
func (h Handle) Pending() bool {
	return h.t != nil && !h.t.cancelled && h.t.done != nil
}

// Timeline is the scene's timer and animation driver. Nothing runs on its own:
// the owner calls Advance once per tick, and completion callbacks run inside
// Advance after every task has been stepped, in scheduling order.
type Timeline struct {
	world  *ecs.World
	now    time.Duration
	nextID uint64
	tasks  []*task
}

// NewTimeline creates a timeline that moves entities in w.
func NewTimeline(w *ecs.World) *Timeline {
	return &Timeline{world: w}
}

// Now is the simulated time advanced so far.
func (tl *Timeline) Now() time.Duration { return tl.now }

// Pending is the number of scheduled tasks.
func (tl *Timeline) Pending() int {
	n := 0
	for _, t := range tl.tasks {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// Tween schedules a motion; done runs once every target has arrived.
// Start positions are captured now. Targets destroyed mid-flight are skipped.
func (tl *Timeline) Tween(tw Tween, done func()) Handle {
	t := tl.add(taskTween, tw.Duration, done)
	t.targets = append([]ecs.EntityID(nil), tw.Targets...)
	t.from = make([]vmath.Vec2, len(t.targets))
	for i, id := range t.targets {
		if c := tl.world.Get(id, component.CPosition); c != nil {
			t.from[i] = c.(component.Position).Vec2
		}
	}
	t.to = tw.To
	t.ease = tw.Ease
	if t.ease == nil {
		t.ease = vmath.Linear
	}
	return Handle{t}
}

// After schedules fn to run once d of simulated time has passed.
func (tl *Timeline) After(d time.Duration, fn func()) Handle {
	return Handle{tl.add(taskDelay, d, fn)}
}

func (tl *Timeline) add(kind taskKind, d time.Duration, done func()) *task {
	if done == nil {
		done = func() {}
	}
	tl.nextID++
	t := &task{id: tl.nextID, kind: kind, duration: d, done: done}
	tl.tasks = append(tl.tasks, t)
	return t
}

// Advance steps every task by dt and then fires the callbacks of those that
// finished. Tasks scheduled by a callback start on the next Advance.
func (tl *Timeline) Advance(dt time.Duration) {
	tl.now += dt
	current := tl.tasks
	tl.tasks = nil

	var finished []*task
	for _, t := range current {
		if t.cancelled {
			continue
		}
		t.elapsed += dt
		if t.kind == taskTween {
			tl.step(t)
		}
		if t.elapsed >= t.duration {
			finished = append(finished, t)
			continue
		}
		tl.tasks = append(tl.tasks, t)
	}

	for _, t := range finished {
		// An earlier callback in this batch may have cancelled it.
		if t.cancelled {
			continue
		}
		done := t.done
		t.done = nil
		done()
	}
}

func (tl *Timeline) step(t *task) {
	p := 1.0
	if t.duration > 0 && t.elapsed < t.duration {
		p = float64(t.elapsed) / float64(t.duration)
	}
	k := t.ease(p)
	for i, id := range t.targets {
		if !tl.world.Alive(id) {
			continue
		}
		to := t.to.apply(t.from[i])
		if p < 1 {
			to = vmath.LerpVec(t.from[i], to, k)
		}
		tl.world.Add(id, component.Position{Vec2: to})
	}
}

// Clear cancels every pending task.
func (tl *Timeline) Clear() {
	for _, t := range tl.tasks {
		t.cancelled = true
	}
	tl.tasks = nil
}
