package app

import "sync"

// publisher holds screen state.
// All state writes go through update, which serializes mutation and notification,
// so every subscriber sees snapshots in the order they were produced.
type publisher[S any] struct {
	updateMu sync.Mutex

	mu        sync.RWMutex
	state     S
	nextID    int
	observers []observer[S]
}

type observer[S any] struct {
	id int
	fn func(S)
}

func (p *publisher[S]) snapshot() S {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.state
}

// update applies fn to state. If fn returns false, state is considered unchanged
// and subscribers are not notified.
func (p *publisher[S]) update(fn func(*S) bool) bool {
	p.updateMu.Lock()
	defer p.updateMu.Unlock()

	p.mu.Lock()
	if !fn(&p.state) {
		p.mu.Unlock()
		return false
	}
	state := p.state
	observers := make([]observer[S], len(p.observers))
	copy(observers, p.observers)
	p.mu.Unlock()

	for _, o := range observers {
		o.fn(state)
	}

	return true
}

func (p *publisher[S]) subscribe(fn func(S)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.nextID++
	id := p.nextID
	p.observers = append(p.observers, observer[S]{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			defer p.mu.Unlock()

			for i, o := range p.observers {
				if o.id == id {
					p.observers = append(p.observers[:i:i], p.observers[i+1:]...)
					return
				}
			}
		})
	}
}
