// Package history implements undo/redo over graph snapshots.
//
// The Manager keeps two stacks. Save pushes the pre-mutation snapshot onto
// past and invalidates future; Undo and Redo swap the caller's current state
// with the top of the opposite stack. Snapshots are cloned on the way in and
// on the way out, so the Manager never shares memory with a live graph.
package history

import "github.com/katalvlaran/graphstudio/core"

// Options configures a Manager.
type Options struct {
	// Limit caps the number of undo steps; 0 means unbounded.
	// When exceeded, the oldest snapshot is dropped.
	Limit int
}

// Option mutates Options.
type Option func(*Options)

// WithLimit caps the undo depth. Non-positive values mean unbounded.
func WithLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.Limit = n
	}
}

// Manager is the past/future snapshot store. Not safe for concurrent use.
type Manager struct {
	opts   Options
	past   []core.Snapshot
	future []core.Snapshot
}

// New returns an empty Manager.
func New(opts ...Option) *Manager {
	m := &Manager{}
	for _, opt := range opts {
		opt(&m.opts)
	}
	return m
}

// Save records s as the state before a structural mutation and clears the
// redo stack.
func (m *Manager) Save(s core.Snapshot) {
	m.past = append(m.past, s.Clone())
	if m.opts.Limit > 0 && len(m.past) > m.opts.Limit {
		drop := len(m.past) - m.opts.Limit
		m.past = append(m.past[:0:0], m.past[drop:]...)
	}
	m.future = nil
}

// Undo pops the newest past snapshot and pushes current onto future.
// With an empty past it returns false and changes nothing.
func (m *Manager) Undo(current core.Snapshot) (core.Snapshot, bool) {
	if len(m.past) == 0 {
		return core.Snapshot{}, false
	}
	prev := m.past[len(m.past)-1]
	m.past = m.past[:len(m.past)-1]
	m.future = append(m.future, current.Clone())
	return prev.Clone(), true
}

// Redo mirrors Undo against future.
func (m *Manager) Redo(current core.Snapshot) (core.Snapshot, bool) {
	if len(m.future) == 0 {
		return core.Snapshot{}, false
	}
	next := m.future[len(m.future)-1]
	m.future = m.future[:len(m.future)-1]
	m.past = append(m.past, current.Clone())
	return next.Clone(), true
}

// CanUndo reports whether Undo would succeed.
func (m *Manager) CanUndo() bool { return len(m.past) > 0 }

// CanRedo reports whether Redo would succeed.
func (m *Manager) CanRedo() bool { return len(m.future) > 0 }

// Depth returns the sizes of both stacks.
func (m *Manager) Depth() (past, future int) { return len(m.past), len(m.future) }

// Reset drops both stacks.
func (m *Manager) Reset() {
	m.past = nil
	m.future = nil
}
