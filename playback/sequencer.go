// Package playback steps through a list of algorithm frames, manually or on
// a timer.
//
// State machine: Index ∈ [-1, Len-1] (−1 = nothing shown) and Playing.
// While playing, exactly one ticker goroutine calls Next every Speed.
// Every transition that stops or replaces the ticker bumps a generation
// counter under the lock, so a tick that was already in flight is dropped
// and can never advance the cursor of a newer list or speed.
package playback

import (
	"sync"
	"time"

	"github.com/katalvlaran/graphstudio/step"
)

// DefaultSpeed is the interval between automatic steps.
const DefaultSpeed = 800 * time.Millisecond

// State is a consistent view of the sequencer.
type State struct {
	Index   int
	Len     int
	Playing bool
	Speed   time.Duration
}

// Options configures a Sequencer.
type Options struct {
	Speed    time.Duration
	Clock    Clock
	OnChange func(State)
}

// Option mutates Options.
type Option func(*Options)

// WithSpeed sets the initial interval; non-positive values are ignored.
func WithSpeed(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.Speed = d
		}
	}
}

// WithClock injects the ticker source.
func WithClock(c Clock) Option {
	return func(o *Options) { o.Clock = c }
}

// WithOnChange registers a callback fired after every state change.
// Automatic steps fire it from the ticker goroutine, outside any lock.
func WithOnChange(fn func(State)) Option {
	return func(o *Options) { o.OnChange = fn }
}

// Sequencer is safe for concurrent use.
type Sequencer struct {
	mu      sync.Mutex
	opts    Options
	steps   []step.Step
	index   int
	playing bool
	speed   time.Duration

	gen    uint64
	cancel chan struct{}
	done   chan struct{}
}

// New returns an empty, stopped Sequencer.
func New(opts ...Option) *Sequencer {
	o := Options{Speed: DefaultSpeed, Clock: SystemClock{}}
	for _, opt := range opts {
		opt(&o)
	}
	return &Sequencer{opts: o, index: -1, speed: o.Speed}
}

// Load replaces the frames and resets to (-1, stopped).
func (s *Sequencer) Load(steps []step.Step) {
	s.mu.Lock()
	s.stopLocked()
	s.steps = step.CloneAll(steps)
	s.index = -1
	st := s.stateLocked()
	s.mu.Unlock()
	s.notify(st)
}

// Reset drops all frames.
func (s *Sequencer) Reset() { s.Load(nil) }

// Next advances one frame; at the last frame it stops playback instead.
func (s *Sequencer) Next() {
	s.mu.Lock()
	s.nextLocked()
	st := s.stateLocked()
	s.mu.Unlock()
	s.notify(st)
}

// Prev steps back one frame, down to -1.
func (s *Sequencer) Prev() {
	s.mu.Lock()
	if s.index > -1 {
		s.index--
	}
	st := s.stateLocked()
	s.mu.Unlock()
	s.notify(st)
}

// SetStep jumps to i, clamped into [-1, Len-1], and stops playback.
func (s *Sequencer) SetStep(i int) {
	s.mu.Lock()
	s.stopLocked()
	s.index = clamp(i, -1, len(s.steps)-1)
	st := s.stateLocked()
	s.mu.Unlock()
	s.notify(st)
}

// Play starts the ticker. It is a no-op with no frames or when already playing.
func (s *Sequencer) Play() {
	s.mu.Lock()
	if s.playing || len(s.steps) == 0 {
		s.mu.Unlock()
		return
	}
	s.playing = true
	s.startLocked()
	st := s.stateLocked()
	s.mu.Unlock()
	s.notify(st)
}

// Pause stops the ticker and keeps the cursor.
func (s *Sequencer) Pause() {
	s.mu.Lock()
	if !s.playing {
		s.mu.Unlock()
		return
	}
	s.stopLocked()
	st := s.stateLocked()
	s.mu.Unlock()
	s.notify(st)
}

// Toggle flips between Play and Pause.
func (s *Sequencer) Toggle() {
	if s.Playing() {
		s.Pause()
		return
	}
	s.Play()
}

// SetSpeed changes the interval. A running ticker is replaced atomically.
func (s *Sequencer) SetSpeed(d time.Duration) {
	if d <= 0 {
		return
	}
	s.mu.Lock()
	s.speed = d
	if s.playing {
		s.stopLocked()
		s.playing = true
		s.startLocked()
	}
	st := s.stateLocked()
	s.mu.Unlock()
	s.notify(st)
}

// Close stops playback and waits for the ticker goroutine to exit.
// It must not be called from the OnChange callback.
func (s *Sequencer) Close() {
	s.mu.Lock()
	done := s.done
	s.stopLocked()
	s.mu.Unlock()
	if done != nil {
		<-done
	}
}

// Current returns the frame at the cursor; false while Index is -1.
func (s *Sequencer) Current() (step.Step, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index < 0 || s.index >= len(s.steps) {
		return step.Step{}, false
	}
	return s.steps[s.index].Clone(), true
}

// Snapshot returns the state and the current step read under one lock, so
// the step always matches State.Index.
func (s *Sequencer) Snapshot() (State, step.Step, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.stateLocked()
	if s.index < 0 || s.index >= len(s.steps) {
		return st, step.Step{}, false
	}
	return st, s.steps[s.index].Clone(), true
}

// Index returns the cursor.
func (s *Sequencer) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Playing reports whether the ticker runs.
func (s *Sequencer) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

// Speed returns the current interval.
func (s *Sequencer) Speed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speed
}

// Len returns the number of frames.
func (s *Sequencer) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.steps)
}

// Steps returns a copy of the frames.
func (s *Sequencer) Steps() []step.Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return step.CloneAll(s.steps)
}

// State returns a consistent snapshot of the cursor.
func (s *Sequencer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Sequencer) nextLocked() {
	if s.index < len(s.steps)-1 {
		s.index++
		return
	}
	if s.playing {
		s.stopLocked()
	}
}

// startLocked launches the ticker goroutine for a new generation.
func (s *Sequencer) startLocked() {
	s.gen++
	gen := s.gen
	cancel := make(chan struct{})
	done := make(chan struct{})
	s.cancel, s.done = cancel, done

	t := s.opts.Clock.NewTicker(s.speed)
	go s.loop(gen, t, cancel, done)
}

// stopLocked invalidates the running generation and signals its goroutine.
func (s *Sequencer) stopLocked() {
	s.playing = false
	s.gen++
	if s.cancel != nil {
		close(s.cancel)
		s.cancel, s.done = nil, nil
	}
}

func (s *Sequencer) loop(gen uint64, t Ticker, cancel <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer t.Stop()
	for {
		select {
		case <-cancel:
			return
		case <-t.C():
			if !s.tick(gen) {
				return
			}
		}
	}
}

// tick advances for generation gen and reports whether to keep ticking.
func (s *Sequencer) tick(gen uint64) bool {
	s.mu.Lock()
	if gen != s.gen || !s.playing {
		s.mu.Unlock()
		return false
	}
	s.nextLocked()
	st := s.stateLocked()
	s.mu.Unlock()
	s.notify(st)
	return st.Playing
}

func (s *Sequencer) stateLocked() State {
	return State{Index: s.index, Len: len(s.steps), Playing: s.playing, Speed: s.speed}
}

func (s *Sequencer) notify(st State) {
	if s.opts.OnChange != nil {
		s.opts.OnChange(st)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
