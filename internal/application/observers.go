package application

import "sync"

// observers fans a value out to subscribers over one-slot channels. A slow
// subscriber only ever sees the most recent value.
type observers[T any] struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan T
}

func (o *observers[T]) subscribe() (<-chan T, func()) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.subs == nil {
		o.subs = make(map[int]chan T)
	}
	id := o.nextID
	o.nextID++
	ch := make(chan T, 1)
	o.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			o.mu.Lock()
			defer o.mu.Unlock()
			if sub, ok := o.subs[id]; ok {
				delete(o.subs, id)
				close(sub)
			}
		})
	}
	return ch, cancel
}

func (o *observers[T]) publish(value T) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, ch := range o.subs {
		select {
		case <-ch:
		default:
		}
		ch <- value
	}
}
