package wheel

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	// Offsets of at most this many rows are dropped instead of animated back.
	minDeltaForScrolling = 1
	// Duration of timed scrolls started without an explicit duration.
	defaultScrollDuration = 400 * time.Millisecond
	// Fling deceleration in rows per second squared.
	defaultDeceleration = 60.0
	// Release velocities below this many rows per second do not fling.
	minFlingVelocity = 5.0
	// Samples older than this do not contribute to the release velocity.
	velocityWindow = 100 * time.Millisecond
)

// ErrUnknownInterpolator is returned when an interpolator name is not known.
var ErrUnknownInterpolator = errors.New("unknown interpolator")

// Interpolator maps the elapsed fraction of a timed scroll, in [0, 1], to the
// completed fraction of its distance.
type Interpolator func(t float64) float64

// Built-in interpolators.
var (
	Linear Interpolator = func(t float64) float64 { return t }
	// EaseOut starts fast and settles with a cubic tail.
	EaseOut Interpolator = func(t float64) float64 {
		t--
		return t*t*t + 1
	}
	// Decelerate is a quadratic ease-out.
	Decelerate Interpolator = func(t float64) float64 {
		return 1 - (1-t)*(1-t)
	}
)

var interpolators = map[string]Interpolator{
	"linear":     Linear,
	"ease-out":   EaseOut,
	"decelerate": Decelerate,
}

// InterpolatorByName returns a built-in interpolator: "linear", "ease-out" or
// "decelerate".
func InterpolatorByName(name string) (Interpolator, error) {
	i, ok := interpolators[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownInterpolator, name)
	}
	return i, nil
}

// FrameFunc advances an animation to now. It returns false once the
// animation has nothing left to do and no longer needs frames.
type FrameFunc func(now time.Time) bool

// FrameScheduler runs FrameFuncs once per display frame on the goroutine
// that owns the primitives. Application implements it.
type FrameScheduler interface {
	ScheduleFrame(f FrameFunc)
}

// scrollerListener receives the scroller's progress. scrolled reports the row
// delta since the previous call; justify follows a finished scroll or fling;
// finished follows a finished justification.
type scrollerListener interface {
	scrollStarted()
	scrolled(delta int)
	justify()
	scrollFinished()
}

type scrollMode int

const (
	scrollIdle scrollMode = iota
	scrollTimed
	scrollFling
)

// Scroller turns timed scrolls and flings into a stream of integer row
// deltas, one batch per frame.
type Scroller struct {
	listener  scrollerListener
	scheduler FrameScheduler
	clock     func() time.Time

	interpolator Interpolator
	deceleration float64

	mode       scrollMode
	justifying bool
	start      time.Time
	duration   time.Duration
	distance   int
	velocity   float64
	last       int

	// generation changes whenever the current animation is replaced or
	// stopped, so a frame that started it can tell it is stale.
	generation uint64
	scheduled  bool
	draining   bool
}

func newScroller(listener scrollerListener) *Scroller {
	return &Scroller{
		listener:     listener,
		clock:        time.Now,
		interpolator: EaseOut,
		deceleration: defaultDeceleration,
	}
}

// SetInterpolator sets the easing of timed scrolls. nil restores EaseOut.
func (s *Scroller) SetInterpolator(i Interpolator) {
	if i == nil {
		i = EaseOut
	}
	s.interpolator = i
}

// SetDeceleration sets the fling deceleration in rows per second squared.
func (s *Scroller) SetDeceleration(rowsPerSecond2 float64) {
	if rowsPerSecond2 > 0 {
		s.deceleration = rowsPerSecond2
	}
}

// SetFrameScheduler sets the scheduler that drives the animations. Without
// one, animations complete synchronously.
func (s *Scroller) SetFrameScheduler(scheduler FrameScheduler) {
	s.scheduler = scheduler
	s.scheduled = false
	if s.mode != scrollIdle {
		s.schedule()
	}
}

// IsRunning reports whether an animation is in progress.
func (s *Scroller) IsRunning() bool {
	return s.mode != scrollIdle
}

// Scroll animates distance rows over duration. A zero duration uses the
// default of 400ms.
func (s *Scroller) Scroll(distance int, duration time.Duration) {
	s.startTimed(distance, duration, false)
}

// justify animates the snap-back of a residual offset.
func (s *Scroller) justify(distance int) {
	s.startTimed(distance, defaultScrollDuration, true)
}

func (s *Scroller) startTimed(distance int, duration time.Duration, justifying bool) {
	if duration <= 0 {
		duration = defaultScrollDuration
	}
	s.reset(scrollTimed, justifying)
	s.distance = distance
	s.duration = duration
	s.listener.scrollStarted()
	s.schedule()
}

// Fling starts a decelerating motion with the given initial velocity in rows
// per second. Positive velocities move content down.
func (s *Scroller) Fling(velocity float64) {
	if velocity == 0 {
		return
	}
	s.reset(scrollFling, false)
	s.velocity = velocity
	s.duration = time.Duration(math.Abs(velocity) / s.deceleration * float64(time.Second))
	s.listener.scrollStarted()
	s.schedule()
}

// Stop cancels the running animation. No further deltas or completion
// callbacks are delivered for it.
func (s *Scroller) Stop() {
	if s.mode == scrollIdle {
		return
	}
	s.mode = scrollIdle
	s.generation++
}

func (s *Scroller) reset(mode scrollMode, justifying bool) {
	s.generation++
	s.mode = mode
	s.justifying = justifying
	s.start = s.clock()
	s.last = 0
	s.distance = 0
	s.velocity = 0
}

// position returns the animation's displacement at now and whether it is
// complete.
func (s *Scroller) position(now time.Time) (int, bool) {
	elapsed := now.Sub(s.start)
	if elapsed < 0 {
		elapsed = 0
	}
	switch s.mode {
	case scrollTimed:
		if elapsed >= s.duration {
			return s.distance, true
		}
		t := float64(elapsed) / float64(s.duration)
		return int(math.Round(s.interpolator(t) * float64(s.distance))), false
	case scrollFling:
		done := elapsed >= s.duration
		if done {
			elapsed = s.duration
		}
		t := elapsed.Seconds()
		v := s.velocity
		pos := v*t - math.Copysign(s.deceleration*t*t/2, v)
		return int(math.Round(pos)), done
	}
	return s.last, true
}

// step advances the animation to now and reports whether it still runs.
func (s *Scroller) step(now time.Time) bool {
	if s.mode == scrollIdle {
		return false
	}

	gen := s.generation
	pos, done := s.position(now)
	if delta := pos - s.last; delta != 0 {
		s.last = pos
		s.listener.scrolled(delta)
		if s.generation != gen {
			// The listener stopped or replaced the animation.
			return s.mode != scrollIdle
		}
	}
	if done {
		justifying := s.justifying
		s.mode = scrollIdle
		s.generation++
		if justifying {
			s.listener.scrollFinished()
		} else {
			s.listener.justify()
		}
	}
	return s.mode != scrollIdle
}

func (s *Scroller) frame(now time.Time) bool {
	running := s.step(now)
	if !running {
		s.scheduled = false
	}
	return running
}

func (s *Scroller) schedule() {
	if s.scheduler == nil {
		s.drain()
		return
	}
	if !s.scheduled {
		s.scheduled = true
		s.scheduler.ScheduleFrame(s.frame)
	}
}

// drain runs animations to completion when there is no scheduler.
func (s *Scroller) drain() {
	if s.draining {
		return
	}
	s.draining = true
	defer func() { s.draining = false }()
	for s.mode != scrollIdle {
		s.step(s.start.Add(s.duration))
	}
}

type velocitySample struct {
	at  time.Time
	row int
}

// velocityTracker estimates the pointer velocity from the motion samples of
// the last velocityWindow.
type velocityTracker struct {
	samples []velocitySample
}

func (t *velocityTracker) reset() {
	t.samples = t.samples[:0]
}

func (t *velocityTracker) add(at time.Time, row int) {
	t.samples = append(t.samples, velocitySample{at: at, row: row})
	t.prune(at)
}

func (t *velocityTracker) prune(now time.Time) {
	cutoff := now.Add(-velocityWindow)
	i := 0
	for i < len(t.samples) && t.samples[i].at.Before(cutoff) {
		i++
	}
	if i > 0 {
		t.samples = append(t.samples[:0], t.samples[i:]...)
	}
}

// velocity returns rows per second over the retained samples, positive when
// the pointer moves down.
func (t *velocityTracker) velocity(now time.Time) float64 {
	t.prune(now)
	if len(t.samples) < 2 {
		return 0
	}
	first, last := t.samples[0], t.samples[len(t.samples)-1]
	dt := last.at.Sub(first.at).Seconds()
	if dt <= 0 {
		return 0
	}
	return float64(last.row-first.row) / dt
}
