package editor

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/graphstudio/core"
	"github.com/katalvlaran/graphstudio/geometry"
	"github.com/katalvlaran/graphstudio/playback"
	"github.com/katalvlaran/graphstudio/runner"
)

// Mode is the active tool.
type Mode int

// Tool modes.
const (
	ModePointer Mode = iota
	ModeNode
	ModeEdge
	ModeDelete
)

var modeNames = [...]string{"pointer", "node", "edge", "delete"}

// String implements fmt.Stringer.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode maps a name back to a Mode.
func ParseMode(s string) (Mode, error) {
	for i, n := range modeNames {
		if n == s {
			return Mode(i), nil
		}
	}
	return ModePointer, fmt.Errorf("editor: unknown mode %q", s)
}

// Button identifies the pointer button of an event.
type Button int

// Pointer buttons.
const (
	ButtonPrimary Button = iota
	ButtonMiddle
	ButtonSecondary
)

// PointerEvent is one pointer callback in screen coordinates.
type PointerEvent struct {
	Screen core.Point
	Button Button
	Shift  bool
}

// HitKind classifies what lies under the pointer.
type HitKind int

// Hit kinds, in priority order.
const (
	HitNone HitKind = iota
	HitControl
	HitNode
	HitEdge
)

// Hit is the result of HitTest.
type Hit struct {
	Kind HitKind
	ID   string
}

// Gesture is the transient pointer state. It is one of Idle, DrawingEdge,
// BoxSelecting, Panning, DraggingNodes or DraggingControlPoint.
type Gesture interface {
	gesture()
}

// Idle means no gesture is in progress.
type Idle struct{}

// DrawingEdge waits for the second click of the edge tool.
type DrawingEdge struct {
	SourceID string
	// Cursor is the rubber-band end in world coordinates.
	Cursor core.Point
}

// BoxSelecting is a region drag in world coordinates.
type BoxSelecting struct {
	Origin  core.Point
	Current core.Point
}

// Rect returns the dragged rectangle.
func (b BoxSelecting) Rect() geometry.Rect {
	return geometry.NewRect(b.Origin.X, b.Origin.Y, b.Current.X-b.Origin.X, b.Current.Y-b.Origin.Y)
}

// Panning drags the viewport; Last is in screen coordinates.
type Panning struct {
	Last core.Point
}

// DraggingNodes moves the node selection; Last is in world coordinates.
type DraggingNodes struct {
	IDs   []string
	Last  core.Point
	saved bool
}

// DraggingControlPoint bends one edge.
type DraggingControlPoint struct {
	EdgeID string
	saved  bool
}

func (Idle) gesture()                  {}
func (DrawingEdge) gesture()           {}
func (BoxSelecting) gesture()          {}
func (Panning) gesture()               {}
func (*DraggingNodes) gesture()        {}
func (*DraggingControlPoint) gesture() {}

// Options configures an Editor.
type Options struct {
	Logger        *slog.Logger
	HistoryLimit  int
	PlaybackSpeed time.Duration
	Clock         playback.Clock
	Geometry      []geometry.Option
	Runner        runner.Runner
	// OnPlayback observes every playback state change.
	OnPlayback func(playback.State)
	// EdgeTolerance is the hit distance for edges and handles, world units.
	EdgeTolerance float64
}

// Option mutates Options.
type Option func(*Options)

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithHistoryLimit caps undo depth.
func WithHistoryLimit(n int) Option {
	return func(o *Options) { o.HistoryLimit = n }
}

// WithPlaybackSpeed sets the initial playback interval.
func WithPlaybackSpeed(d time.Duration) Option {
	return func(o *Options) { o.PlaybackSpeed = d }
}

// WithClock injects the playback ticker source.
func WithClock(c playback.Clock) Option {
	return func(o *Options) { o.Clock = c }
}

// WithGeometry forwards layout options to every render.
func WithGeometry(opts ...geometry.Option) Option {
	return func(o *Options) { o.Geometry = append(o.Geometry, opts...) }
}

// WithRunner sets the algorithm collaborator used by RunAlgorithm.
func WithRunner(r runner.Runner) Option {
	return func(o *Options) { o.Runner = r }
}

// WithPlaybackObserver registers fn with the editor's sequencer. See
// playback.WithOnChange for the calling rules.
func WithPlaybackObserver(fn func(playback.State)) Option {
	return func(o *Options) { o.OnPlayback = fn }
}
