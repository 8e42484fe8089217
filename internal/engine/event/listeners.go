// Package event provides ordered callback lists with cancel handles.
package event

// Listeners is an ordered set of callbacks. The zero value is ready to use.
// It is not safe for concurrent use; the viewer runs on a single goroutine.
type Listeners struct {
	nextID int
	fns    map[int]func()
	order  []int
}

// Add registers fn and returns a func that removes it. The remover is idempotent.
func (s *Listeners) Add(fn func()) (cancel func()) {
	if s.fns == nil {
		s.fns = make(map[int]func())
	}
	s.nextID++
	id := s.nextID
	s.fns[id] = fn
	s.order = append(s.order, id)

	removed := false
	return func() {
		if removed {
			return
		}
		removed = true
		delete(s.fns, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

// Len returns the number of registered callbacks.
func (s *Listeners) Len() int {
	return len(s.fns)
}

// Emit calls every callback in registration order.
func (s *Listeners) Emit() {
	// Copy so callbacks may unsubscribe while being called.
	ids := append([]int(nil), s.order...)
	for _, id := range ids {
		if fn, ok := s.fns[id]; ok {
			fn()
		}
	}
}
