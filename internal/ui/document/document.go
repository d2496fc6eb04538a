// Package document models the screen-wide surface that pointer presses land
// on before any component sees them.
package document

import "sync"

// PointerListener is called with the screen cell of a pointer press.
type PointerListener func(x, y int)

type listener struct {
	id int
	fn PointerListener
}

// Document dispatches pointer presses to registered listeners synchronously,
// in registration order.
type Document struct {
	mu        sync.RWMutex
	nextID    int
	listeners []listener
}

// New creates an empty document.
func New() *Document {
	return &Document{}
}

// AddPointerDownListener registers fn and returns a function that removes it.
// The returned function may be called any number of times.
func (d *Document) AddPointerDownListener(fn func(x, y int)) (remove func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := d.nextID
	d.nextID++
	d.listeners = append(d.listeners, listener{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { d.remove(id) })
	}
}

func (d *Document) remove(id int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, l := range d.listeners {
		if l.id == id {
			d.listeners = append(d.listeners[:i:i], d.listeners[i+1:]...)
			return
		}
	}
}

// DispatchPointerDown delivers a press at (x, y) to every listener.
// Listeners may add or remove listeners while being called.
func (d *Document) DispatchPointerDown(x, y int) {
	d.mu.RLock()
	snapshot := make([]listener, len(d.listeners))
	copy(snapshot, d.listeners)
	d.mu.RUnlock()

	for _, l := range snapshot {
		l.fn(x, y)
	}
}

// Listeners returns the number of registered listeners.
func (d *Document) Listeners() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.listeners)
}
