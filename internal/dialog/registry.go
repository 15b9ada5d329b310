package dialog

import (
	"sort"

	"github.com/1broseidon/paneldock/internal/eventlog"
	"github.com/1broseidon/paneldock/internal/placement"
)

// Handle is the capability set the registry needs from a dialog panel.
// The registry references handles, it never owns them: it mutates the
// position, asks for the fixed size, and invokes the lifecycle
// callbacks. Tearing down the underlying resource after Close is the
// caller's responsibility.
type Handle interface {
	// Pos returns the current top-left corner in screen coordinates.
	Pos() (x, y int)
	// SetPos moves the dialog's top-left corner.
	SetPos(x, y int)
	// Size returns the fixed width and height declared at creation.
	Size() (width, height int)
	// Close tears down the dialog's host resources.
	Close()
	// Refresh recomputes the dialog's internal layout without moving it.
	Refresh()
}

// Host is the UI container dialogs are attached to.
type Host interface {
	// Attach adds the handle to the visible UI tree. Called once per
	// successful Open.
	Attach(Handle)
	// DisplaySize returns the current display bounds. Only the placement
	// fallback scan consults it.
	DisplaySize() placement.Size
}

// Registry tracks open dialogs by key and assigns each a non-overlapping
// position near the top-left screen corner.
//
// All methods must be called from a single goroutine (the host UI
// thread); the registry carries no lock. Callers living on other
// goroutines serialize access themselves.
type Registry struct {
	host    Host
	params  placement.Params
	events  *eventlog.Logger
	dialogs map[string]Handle
}

// NewRegistry creates an empty registry bound to a host container.
// events may be nil to disable lifecycle logging.
func NewRegistry(host Host, params placement.Params, events *eventlog.Logger) *Registry {
	return &Registry{
		host:    host,
		params:  params,
		events:  events,
		dialogs: make(map[string]Handle),
	}
}

// Open places h and registers it under key. A key that is already open
// is left untouched: the existing dialog keeps its position and h is
// ignored.
func (r *Registry) Open(key string, h Handle) {
	if _, open := r.dialogs[key]; open {
		return
	}

	width, height := h.Size()
	pos := r.params.FindPosition(r.Rects(), width, height, r.host.DisplaySize())
	h.SetPos(pos.X, pos.Y)
	r.host.Attach(h)
	r.dialogs[key] = h

	r.events.Log(eventlog.EventOpen, key, map[string]interface{}{
		"x": pos.X, "y": pos.Y, "width": width, "height": height,
	})
}

// Get returns the handle registered under key.
func (r *Registry) Get(key string) (Handle, bool) {
	h, open := r.dialogs[key]
	return h, open
}

// Remove drops the mapping entry without invoking the close callback.
// Used when the host UI has already torn the dialog down, e.g. the user
// clicked a native close control. No-op when the key is absent.
func (r *Registry) Remove(key string) {
	if _, open := r.dialogs[key]; !open {
		return
	}
	delete(r.dialogs, key)
	r.events.Log(eventlog.EventRemove, key, nil)
}

// Close invokes the handle's close callback and drops the mapping.
// No-op when the key is absent.
func (r *Registry) Close(key string) {
	h, open := r.dialogs[key]
	if !open {
		return
	}
	h.Close()
	delete(r.dialogs, key)
	r.events.Log(eventlog.EventClose, key, nil)
}

// Refresh invokes the handle's relayout callback. The dialog keeps its
// position. No-op when the key is absent.
func (r *Registry) Refresh(key string) {
	h, open := r.dialogs[key]
	if !open {
		return
	}
	h.Refresh()
	r.events.Log(eventlog.EventRefresh, key, nil)
}

// Clear closes every open dialog. The key snapshot is taken up front so
// close callbacks that re-enter the registry cannot make the traversal
// skip or double-process an entry; Close itself no-ops on keys that are
// already gone.
func (r *Registry) Clear() {
	keys := r.Keys()
	for _, key := range keys {
		r.Close(key)
	}
	r.events.Log(eventlog.EventClear, "", map[string]interface{}{"closed": len(keys)})
}

// Keys returns the open dialog keys in sorted order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.dialogs))
	for key := range r.dialogs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of open dialogs.
func (r *Registry) Len() int {
	return len(r.dialogs)
}

// Rects returns a snapshot of the rectangles currently occupied by open
// dialogs, in key order.
func (r *Registry) Rects() []placement.Rect {
	rects := make([]placement.Rect, 0, len(r.dialogs))
	for _, key := range r.Keys() {
		h := r.dialogs[key]
		x, y := h.Pos()
		w, hgt := h.Size()
		rects = append(rects, placement.Rect{X: x, Y: y, Width: w, Height: hgt})
	}
	return rects
}
