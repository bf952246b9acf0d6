package wheel

// ListenerID identifies a registered listener. IDs are unique per wheel and
// are never reused.
type ListenerID uint64

// ChangedListener is notified when the wheel's current item changes.
type ChangedListener interface {
	WheelChanged(w *Wheel, oldIndex, newIndex int)
}

// ChangedFunc adapts a plain function to ChangedListener.
type ChangedFunc func(w *Wheel, oldIndex, newIndex int)

func (f ChangedFunc) WheelChanged(w *Wheel, oldIndex, newIndex int) {
	f(w, oldIndex, newIndex)
}

// ScrollListener is notified when the wheel starts and stops moving.
type ScrollListener interface {
	ScrollingStarted(w *Wheel)
	ScrollingFinished(w *Wheel)
}

// ScrollFuncs adapts a pair of functions to ScrollListener. Either may be nil.
type ScrollFuncs struct {
	Started  func(w *Wheel)
	Finished func(w *Wheel)
}

func (f ScrollFuncs) ScrollingStarted(w *Wheel) {
	if f.Started != nil {
		f.Started(w)
	}
}

func (f ScrollFuncs) ScrollingFinished(w *Wheel) {
	if f.Finished != nil {
		f.Finished(w)
	}
}

// ClickListener is notified when an item other than the current one is
// tapped.
type ClickListener interface {
	ItemClicked(w *Wheel, index int)
}

// ClickedFunc adapts a plain function to ClickListener.
type ClickedFunc func(w *Wheel, index int)

func (f ClickedFunc) ItemClicked(w *Wheel, index int) {
	f(w, index)
}

type listenerEntry[T any] struct {
	id       ListenerID
	listener T
}

// listenerSet keeps listeners in registration order.
type listenerSet[T any] struct {
	entries []listenerEntry[T]
}

func (s *listenerSet[T]) add(id ListenerID, listener T) {
	s.entries = append(s.entries, listenerEntry[T]{id: id, listener: listener})
}

func (s *listenerSet[T]) remove(id ListenerID) bool {
	for i, e := range s.entries {
		if e.id == id {
			s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// snapshot returns the listeners as of now. Dispatch iterates the snapshot
// so listeners may add or remove listeners while being notified.
func (s *listenerSet[T]) snapshot() []T {
	if len(s.entries) == 0 {
		return nil
	}
	out := make([]T, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.listener
	}
	return out
}

func (s *listenerSet[T]) len() int {
	return len(s.entries)
}

// listenerRegistry holds the wheel's three observer sets.
type listenerRegistry struct {
	nextID  ListenerID
	changed listenerSet[ChangedListener]
	scroll  listenerSet[ScrollListener]
	clicked listenerSet[ClickListener]
}

func (r *listenerRegistry) id() ListenerID {
	r.nextID++
	return r.nextID
}

func (r *listenerRegistry) remove(id ListenerID) bool {
	return r.changed.remove(id) || r.scroll.remove(id) || r.clicked.remove(id)
}

// AddChangedListener registers a listener for current item changes. Every
// call adds a separate registration with its own ID, so a listener added
// twice is notified twice until both IDs are removed.
func (w *Wheel) AddChangedListener(listener ChangedListener) ListenerID {
	id := w.listeners.id()
	w.listeners.changed.add(id, listener)
	return id
}

// AddScrollListener registers a listener for the start and end of motion.
// Like AddChangedListener, each call is a separate registration.
func (w *Wheel) AddScrollListener(listener ScrollListener) ListenerID {
	id := w.listeners.id()
	w.listeners.scroll.add(id, listener)
	return id
}

// AddClickListener registers a listener for item taps. Like
// AddChangedListener, each call is a separate registration.
func (w *Wheel) AddClickListener(listener ClickListener) ListenerID {
	id := w.listeners.id()
	w.listeners.clicked.add(id, listener)
	return id
}

// RemoveListener unregisters the listener with the given ID. It reports
// whether a listener was removed.
func (w *Wheel) RemoveListener(id ListenerID) bool {
	return w.listeners.remove(id)
}

func (w *Wheel) notifyChanged(oldIndex, newIndex int) {
	for _, l := range w.listeners.changed.snapshot() {
		l.WheelChanged(w, oldIndex, newIndex)
	}
}

func (w *Wheel) notifyScrollingStarted() {
	for _, l := range w.listeners.scroll.snapshot() {
		l.ScrollingStarted(w)
	}
}

func (w *Wheel) notifyScrollingFinished() {
	for _, l := range w.listeners.scroll.snapshot() {
		l.ScrollingFinished(w)
	}
}

func (w *Wheel) notifyClicked(index int) {
	for _, l := range w.listeners.clicked.snapshot() {
		l.ItemClicked(w, index)
	}
}
