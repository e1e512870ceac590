// Package app assembles the editor: document state, the zoom pipeline,
// action dispatch, and rendering.
package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/dshills/zoomfold/internal/config"
	"github.com/dshills/zoomfold/internal/dispatcher"
	zoomhandler "github.com/dshills/zoomfold/internal/dispatcher/handlers/zoom"
	"github.com/dshills/zoomfold/internal/engine/buffer"
	"github.com/dshills/zoomfold/internal/engine/tracking"
	"github.com/dshills/zoomfold/internal/event"
	"github.com/dshills/zoomfold/internal/event/events"
	"github.com/dshills/zoomfold/internal/input"
	"github.com/dshills/zoomfold/internal/renderer/backend"
	"github.com/dshills/zoomfold/internal/renderer/view"
	"github.com/dshills/zoomfold/internal/zoom/controller"
	"github.com/dshills/zoomfold/internal/zoom/decoration"
	"github.com/dshills/zoomfold/internal/zoom/section"
	"github.com/dshills/zoomfold/internal/zoom/state"
)

const editorSource = "app.editor"

// NoticeLog collects user-facing notices for status display.
type NoticeLog struct {
	mu       sync.Mutex
	messages []string
}

// Notify implements controller.Notifier.
func (n *NoticeLog) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

// Messages returns a copy of the collected notices.
func (n *NoticeLog) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.messages))
	copy(out, n.messages)
	return out
}

// Editor owns one document view and its zoom state.
type Editor struct {
	bus        event.Bus
	config     *config.Config
	machine    *state.Machine
	controller *controller.Controller
	dispatcher *dispatcher.Dispatcher
	keymap     *input.Keymap
	notices    *NoticeLog

	snapshot *buffer.Snapshot
	quitting bool
}

// Option configures an Editor.
type Option func(*options)

type options struct {
	oracle controller.SectionOracle
	format controller.LabelFormatter
}

// WithSectionOracle overrides the default outline oracle.
func WithSectionOracle(o controller.SectionOracle) Option {
	return func(opts *options) {
		if o != nil {
			opts.oracle = o
		}
	}
}

// WithBreadcrumbFormatter overrides the breadcrumb label format, for
// example with a plugin hook.
func WithBreadcrumbFormatter(f controller.LabelFormatter) Option {
	return func(opts *options) {
		if f != nil {
			opts.format = f
		}
	}
}

// New creates an editor wired to a fresh event bus.
func New(cfg *config.Config, opts ...Option) (*Editor, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	o := options{
		oracle: section.NewOutlineOracle(),
		format: separatorLabel(cfg.UI().BreadcrumbSeparator),
	}
	for _, opt := range opts {
		opt(&o)
	}

	e := &Editor{
		bus:     event.NewBus(),
		config:  cfg,
		machine: state.NewMachine(),
		keymap:  input.DefaultKeymap(),
		notices: &NoticeLog{},
	}

	if _, err := state.Subscribe(e.bus, e.machine); err != nil {
		return nil, fmt.Errorf("subscribe zoom state: %w", err)
	}

	e.controller = controller.New(e.bus, o.oracle, cfg, e.notices,
		controller.WithLabelFormatter(o.format))

	e.dispatcher = dispatcher.New()
	e.dispatcher.RegisterNamespace(zoomhandler.NewHandler(e.controller))
	e.dispatcher.RegisterNamespace(newCursorHandler(e))
	e.dispatcher.RegisterFunc("editor.quit", func(_ input.Action, _ *dispatcher.Context) dispatcher.Result {
		e.quitting = true
		return dispatcher.NoOp()
	})

	return e, nil
}

// separatorLabel builds the breadcrumb label with a configurable
// separator.
func separatorLabel(sep string) controller.LabelFormatter {
	if sep == "" {
		return controller.DefaultLabel
	}
	return func(displayName, heading string) string {
		if heading == "" {
			return displayName
		}
		return displayName + sep + heading
	}
}

// Bus returns the editor's event bus.
func (e *Editor) Bus() event.Bus {
	return e.bus
}

// Notices returns the collected user-facing notices.
func (e *Editor) Notices() []string {
	return e.notices.Messages()
}

// ShouldQuit reports whether a quit action has been dispatched.
func (e *Editor) ShouldQuit() bool {
	return e.quitting
}

// Snapshot returns the active document, or nil when none is open.
func (e *Editor) Snapshot() *buffer.Snapshot {
	return e.snapshot
}

// ZoomActive reports whether the editor is visually zoomed.
func (e *Editor) ZoomActive() bool {
	return e.controller.VisualActive()
}

// OpenDocument attaches the editor to a new document. Zoom state from
// any previous document is discarded.
func (e *Editor) OpenDocument(ctx context.Context, id, name, text string) error {
	e.snapshot = buffer.NewSnapshot(id, name, text)
	e.machine.Attach(id)
	e.controller.ResetVisual()
	return e.bus.Publish(ctx, event.NewEvent(events.TopicBufferAttached, events.BufferAttached{
		BufferID: id,
		Name:     name,
	}, editorSource))
}

// Insert inserts text at the given offset and publishes the change.
func (e *Editor) Insert(ctx context.Context, offset buffer.ByteOffset, text string) error {
	if err := e.checkOffset(offset); err != nil {
		return err
	}
	old := e.snapshot.Text()
	updated := old[:offset] + text + old[offset:]
	return e.applyChange(ctx, updated, func(rev buffer.RevisionID) tracking.Change {
		return tracking.NewInsertChange(offset, text, rev)
	})
}

// Delete removes the given range and publishes the change.
func (e *Editor) Delete(ctx context.Context, r buffer.Range) error {
	if err := e.checkRange(r); err != nil {
		return err
	}
	old := e.snapshot.Text()
	updated := old[:r.Start] + old[r.End:]
	return e.applyChange(ctx, updated, func(rev buffer.RevisionID) tracking.Change {
		return tracking.NewDeleteChange(r.Start, r.End, old[r.Start:r.End], rev)
	})
}

// Replace swaps the given range for new text and publishes the change.
func (e *Editor) Replace(ctx context.Context, r buffer.Range, text string) error {
	if err := e.checkRange(r); err != nil {
		return err
	}
	old := e.snapshot.Text()
	updated := old[:r.Start] + text + old[r.End:]
	return e.applyChange(ctx, updated, func(rev buffer.RevisionID) tracking.Change {
		return tracking.NewReplaceChange(r.Start, r.End, old[r.Start:r.End], text, rev)
	})
}

func (e *Editor) applyChange(ctx context.Context, updated string, build func(buffer.RevisionID) tracking.Change) error {
	cursor := e.snapshot.PrimarySelection().Start
	next := buffer.NewSnapshot(e.snapshot.ID, e.snapshot.Name, updated)
	change := build(next.Revision)

	e.snapshot = next.WithCursor(change.MapOffset(cursor))
	return e.bus.Publish(ctx, event.NewEvent(events.TopicForChange(change.Type), events.DocumentChanged{
		BufferID: e.snapshot.ID,
		Change:   change,
	}, editorSource))
}

func (e *Editor) checkOffset(offset buffer.ByteOffset) error {
	if e.snapshot == nil {
		return fmt.Errorf("no document open")
	}
	if offset < 0 || offset > e.snapshot.Len() {
		return fmt.Errorf("offset %d out of range [0,%d]", offset, e.snapshot.Len())
	}
	return nil
}

func (e *Editor) checkRange(r buffer.Range) error {
	if e.snapshot == nil {
		return fmt.Errorf("no document open")
	}
	if !r.IsValid() || r.Start < 0 || r.End > e.snapshot.Len() {
		return fmt.Errorf("range %d:%d out of range [0,%d]", r.Start, r.End, e.snapshot.Len())
	}
	return nil
}

// HandleEvent translates a terminal event and dispatches the resulting
// action. Unbound events return a no-op result.
func (e *Editor) HandleEvent(ctx context.Context, ev backend.Event) dispatcher.Result {
	action, ok := e.keymap.Translate(ev)
	if !ok {
		return dispatcher.NoOp()
	}
	return e.Dispatch(ctx, action)
}

// Dispatch executes a named action against the active document.
func (e *Editor) Dispatch(ctx context.Context, action input.Action) dispatcher.Result {
	return e.dispatcher.Dispatch(action, &dispatcher.Context{
		Ctx:      ctx,
		Snapshot: e.snapshot,
	})
}

// Render produces the visual lines for the active document under the
// current zoom decorations.
func (e *Editor) Render() []view.VisualLine {
	if e.snapshot == nil {
		return nil
	}
	opts := view.DefaultOptions()
	opts.BreadcrumbMaxWidth = e.config.UI().BreadcrumbMaxWidth
	return view.Render(e.snapshot, e.machine.Decorations(), opts)
}

// Decorations exposes the current zoom decoration set.
func (e *Editor) Decorations() decoration.Set {
	return e.machine.Decorations()
}
